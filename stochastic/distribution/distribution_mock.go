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

// Package distribution is a generated GoMock package.
package distribution

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	rand "golang.org/x/exp/rand"
)

// MockDistribution is a mock of Distribution interface.
type MockDistribution struct {
	ctrl     *gomock.Controller
	recorder *MockDistributionMockRecorder
	isgomock struct{}
}

// MockDistributionMockRecorder is the mock recorder for MockDistribution.
type MockDistributionMockRecorder struct {
	mock *MockDistribution
}

// NewMockDistribution creates a new mock instance.
func NewMockDistribution(ctrl *gomock.Controller) *MockDistribution {
	mock := &MockDistribution{ctrl: ctrl}
	mock.recorder = &MockDistributionMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDistribution) EXPECT() *MockDistributionMockRecorder {
	return m.recorder
}

// Sample mocks base method.
func (m *MockDistribution) Sample(src rand.Source) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sample", src)
	ret0, _ := ret[0].(float64)
	return ret0
}

// Sample indicates an expected call of Sample.
func (mr *MockDistributionMockRecorder) Sample(src any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sample", reflect.TypeOf((*MockDistribution)(nil).Sample), src)
}
