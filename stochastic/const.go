// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package stochastic

// DefaultPrecision is the number of digits after the decimal point in text mode.
const DefaultPrecision = 10

// MaxPrecision bounds the text precision accepted on the command line.
const MaxPrecision = 100

// NumECDFPoints sets the maximal number of points kept in an empirical cumulative distribution function.
const NumECDFPoints = 300

// StableAlphaTolerance is the distance from one within which the stable engine
// switches to its near-one branch.
const StableAlphaTolerance = 0.001

// OutputBufferSize is the size of the application-level output buffer in bytes.
const OutputBufferSize = 32768

// DiscardCheckInterval is the number of consecutive discards after which a
// redraw loop polls for cancellation.
const DiscardCheckInterval = 1024
