package handlers

import (
	"net/http"
	"reflect"

	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/pkg/response"
)

// writeMutation answers a dashboard write. A failed write that produced a
// notice still returns the re-listed collection so the client can refresh.
func writeMutation(w http.ResponseWriter, status int, res interface{}, err error, notice *dtos.Notice) {
	if err != nil {
		if notice == nil || isNil(res) {
			writeError(w, err)
			return
		}
		response.ErrorDataResponse(w, statusFor(err), notice.Message, res)
		return
	}
	response.SuccessResponse(w, status, res)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
