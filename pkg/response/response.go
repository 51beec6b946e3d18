package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"

	"users-srv/pkg/discord"
	"users-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data and success set to true.
func OK(c *gin.Context, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["success"] = true
	c.JSON(http.StatusOK, data)
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	e := errors.Normalize(err)
	if e == nil {
		e = errors.NewInternal(errors.CodeInternalServerError, nil)
	}
	if e.IsInternal() && d != nil {
		cause := "unknown"
		if err != nil {
			cause = err.Error()
		}
		sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, cause, captureStackTrace()))
	}
	return e.StatusCode(), Resp{
		Success: false,
		Error:   e.Code,
		Fields:  e.Fields,
	}
}

// Error converts err through the taxonomy and sends it.
// Internal failures are reported to d when it is set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	c.JSON(parseError(err, c, d))
}

// AbortWithError is Error for middleware: the rest of the chain is skipped.
func AbortWithError(c *gin.Context, err error, d discord.IDiscord) {
	c.AbortWithStatusJSON(parseError(err, c, d))
}

// ErrorWithMap looks err up in eMap before falling back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for k, v := range eMap {
		if stderrors.Is(err, k) {
			Error(c, v, nil)
			return
		}
	}
	Error(c, err, d)
}

// PanicError answers a recovered panic as an internal failure.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	var err error
	switch v := recovered.(type) {
	case nil:
		err = fmt.Errorf("panic: nil")
	case error:
		err = fmt.Errorf("panic: %w", v)
	default:
		err = fmt.Errorf("panic: %v", v)
	}
	c.AbortWithStatusJSON(parseError(errors.NewInternal(errors.CodeInternalServerError, err), c, d))
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		f, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return stackTrace
}
