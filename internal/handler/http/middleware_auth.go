package http

import (
	"net/http"

	"github.com/MKhiriev/go-scene-outbox/internal/app"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/internal/utils"
)

// auth checks the bearer device token of the request. The token must be
// signed with the device secret and issued for this device.
//
// Requests are rejected with 401 when the header is missing or malformed,
// when the token is invalid or expired, and when it names another device.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.deviceSecret == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeMessage(w, r, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		deviceID, err := utils.ValidateDeviceToken(token, h.deviceSecret)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeMessage(w, r, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}
		if h.deviceID != "" && deviceID != h.deviceID {
			log.Warn().Err(ErrForeignDevice).Str("token_device_id", deviceID).Send()
			h.writeMessage(w, r, app.MsgAccessDenied, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
