package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/sakif/plant-care/internal/apperror"
	"github.com/sakif/plant-care/internal/model"
)

// readBody reads the whole request body. The size limit is applied by the
// router (chi's RequestSize middleware wraps the body in http.MaxBytesReader).
func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperror.ValidationFailed("body", "Request body too large")
		}
		return nil, apperror.ValidationFailed("body", "Could not read request body")
	}
	return body, nil
}

// decodeBody unmarshals body into each dst in turn. POST bodies carry an
// "action" envelope and the action's payload side by side, so the same bytes
// are decoded more than once.
//
// An empty body is treated as {}. Unknown keys are ignored, which is how the
// plant update allow-list drops attributes it does not know.
func decodeBody(body []byte, dst ...any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	for _, d := range dst {
		if err := json.Unmarshal(body, d); err != nil {
			return decodeError(err)
		}
	}
	return nil
}

// decodeError tells a malformed document apart from well-formed JSON that
// holds a value of the wrong type or an unparseable date.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return apperror.ValidationFailed("body", "Invalid value: expected "+typeErr.Type.String())
		}
		return apperror.ValidationFailed(typeErr.Field, "Invalid value for "+typeErr.Field+": expected "+typeErr.Type.String())
	}
	var dateErr *model.DateError
	if errors.As(err, &dateErr) {
		return apperror.ValidationFailed("body", dateErr.Error())
	}
	return apperror.ValidationFailed("body", "Invalid JSON body")
}

// actionRequest is the envelope of every POST body.
type actionRequest struct {
	Action string `json:"action"`
}

// Actions. An empty action means create.
const (
	actionCreate   = "create"
	actionWater    = "water"
	actionComplete = "complete"
	actionLike     = "like"
)

func unknownAction(action string) error {
	return apperror.ValidationFailed("action", "Unknown action: "+action)
}

// queryID parses an optional integer query parameter. ok is false when the
// parameter is absent.
func queryID(r *http.Request, name string) (id int64, ok bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, apperror.ValidationFailed(name, name+" must be an integer")
	}
	return id, true, nil
}
