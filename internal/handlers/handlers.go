package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func SendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, v any) {
	if _, err := SendJSON(w, v); err != nil {
		log.WithError(err).WithField("data", v).Error("failed to send data")
	}
}

func SendErrorOrLog(w http.ResponseWriter, log logrus.FieldLogger, e error) {
	SendJSONOrLog(w, log, map[string]string{
		"error": e.Error(),
	})
}

func Status(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("\"ok\""))
}
