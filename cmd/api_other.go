//go:build !windows

package cmd

import (
	"errors"
	"runtime"

	"github.com/Norgate-AV/winspect/internal/interfaces"
	"github.com/Norgate-AV/winspect/internal/logger"
)

func newWindowAPI(_ logger.LoggerInterface) (interfaces.WindowAPI, error) {
	return nil, errors.New("winspect requires Windows, running on " + runtime.GOOS)
}
