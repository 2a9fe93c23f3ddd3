//go:build windows

package cmd

import (
	"github.com/Norgate-AV/winspect/internal/interfaces"
	"github.com/Norgate-AV/winspect/internal/logger"
	"github.com/Norgate-AV/winspect/internal/windows"
)

func newWindowAPI(log logger.LoggerInterface) (interfaces.WindowAPI, error) {
	return windows.NewWindowsAPI(log), nil
}
