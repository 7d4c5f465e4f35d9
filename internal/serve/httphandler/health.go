package httphandler

import (
	"net/http"
	"time"

	"github.com/stellar/go-stellar-sdk/support/render/httpjson"
)

type HealthHandler struct {
	// PublicAddr is the address the static page is served on.
	PublicAddr string
	StartedAt  time.Time
	// now is overridden in tests.
	now func() time.Time
}

func (h HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.now != nil {
		now = h.now
	}

	httpjson.Render(w, map[string]interface{}{
		"status":         "ok",
		"public_addr":    h.PublicAddr,
		"uptime_seconds": int64(now().Sub(h.StartedAt).Seconds()),
	}, httpjson.JSON)
}
