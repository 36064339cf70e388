package controllers

import (
	"net/http"

	"github.com/Henry881-hack/corries-shop/api/responses"
	"github.com/Henry881-hack/corries-shop/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}
