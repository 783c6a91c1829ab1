package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gblaquiere.dev/billing-guard/internal/guarderrors"
	"gblaquiere.dev/billing-guard/model"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

/*
	Receives budget alerts delivered by a Pub/Sub push subscription
*/

// MessageHandler processes one Pub/Sub message.
type MessageHandler interface {
	Handle(ctx context.Context, m model.PubSubMessage) error
}

type PushHandler struct {
	handler MessageHandler
	logger  *zap.Logger
}

func NewPushHandler(handler MessageHandler, logger *zap.Logger) *PushHandler {
	return &PushHandler{handler: handler, logger: logger}
}

func NewRouter(h *PushHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/pubsub/push", h.ReceivePush).Methods(http.MethodPost)
	r.HandleFunc("/healthz", Health).Methods(http.MethodGet)
	return r
}

func (h *PushHandler) ReceivePush(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("io.ReadAll", zap.Error(err))
		http.Error(w, fmt.Sprintf("Bad Request %q", err), http.StatusBadRequest)
		return
	}

	var push model.PushRequest
	if err := json.Unmarshal(body, &push); err != nil {
		h.logger.Error("json.Unmarshal", zap.Error(err))
		http.Error(w, fmt.Sprintf("Bad Request %q", err), http.StatusBadRequest)
		return
	}

	if err := h.handler.Handle(r.Context(), push.Message); err != nil {
		h.logger.Error("guard.Handle", zap.Error(err), zap.String("subscription", push.Subscription))
		http.Error(w, err.Error(), guarderrors.GetHttpCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Add("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}
