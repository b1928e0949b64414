package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/minefield"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, v any) {
	_, err := SendJSON(w, v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.WithFields(logrus.Fields{
			"response": v,
			"error":    err,
		}).Error("unable to send response")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

// badRequestError marks malformed request bodies.
type badRequestError struct {
	err error
}

func (e badRequestError) Error() string {
	return e.err.Error()
}

func (e badRequestError) Unwrap() error {
	return e.err
}

func statusOf(err error) int {
	var bre badRequestError
	switch {
	case errors.Is(err, minefield.ErrInvalidInput), errors.As(err, &bre):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sendErrorOrLog(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("unable to build board")
	} else {
		log.WithError(err).Debug("rejected board request")
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(wrapError(err)); err != nil {
		log.WithError(err).Error("unable to send error message")
	}
}
