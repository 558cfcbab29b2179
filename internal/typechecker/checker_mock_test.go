package typechecker

import (
	"reflect"

	"github.com/theQuarky/tspp/internal/position"
	"go.uber.org/mock/gomock"
)

// MockReporter is a hand-written gomock double for Reporter, shaped the
// way mockgen would generate it.
type MockReporter struct {
	ctrl     *gomock.Controller
	recorder *MockReporterMockRecorder
}

type MockReporterMockRecorder struct {
	mock *MockReporter
}

func NewMockReporter(ctrl *gomock.Controller) *MockReporter {
	m := &MockReporter{ctrl: ctrl}
	m.recorder = &MockReporterMockRecorder{m}

	return m
}

func (m *MockReporter) EXPECT() *MockReporterMockRecorder {
	return m.recorder
}

func (m *MockReporter) Error(pos position.Position, message string, code ...string) {
	m.ctrl.T.Helper()

	varArgs := []interface{}{pos, message}
	for _, c := range code {
		varArgs = append(varArgs, c)
	}

	m.ctrl.Call(m, "Error", varArgs...)
}

func (mr *MockReporterMockRecorder) Error(pos, message interface{}, code ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	varArgs := append([]interface{}{pos, message}, code...)

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockReporter)(nil).Error), varArgs...)
}
