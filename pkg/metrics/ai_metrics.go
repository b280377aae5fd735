package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AIAttempts counts individual model attempts by provider, model and outcome
	// ("success", "error", "empty").
	AIAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atendezap_ai_attempts_total",
		Help: "Chat-completion attempts per provider and model.",
	}, []string{"provider", "model", "outcome"})

	// AIExhausted counts requests for which every candidate model failed.
	AIExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atendezap_ai_exhausted_total",
		Help: "Requests that exhausted the whole model ladder.",
	})

	// ChatReplies counts assistant replies by outcome ("ok", "error", "cached").
	ChatReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atendezap_chat_replies_total",
		Help: "Assistant chat replies by outcome.",
	}, []string{"outcome"})
)
