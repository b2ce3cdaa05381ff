package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/veridoc/kyc-portal/internal/interface/http"
	"github.com/veridoc/kyc-portal/internal/interface/middleware"
	"github.com/veridoc/kyc-portal/pkg/helpers"
)

// KycModule wires the submission workflow routes.
// Protected (any authenticated role):
//
//	POST /api/kyc/submit
//	GET  /api/kyc/status
type KycModule struct {
	Handler *handlers.KycHandler
	JWT     *helpers.JWTManager
}

func NewKycModule(h *handlers.KycHandler, jwt *helpers.JWTManager) *KycModule {
	return &KycModule{Handler: h, JWT: jwt}
}

func (m *KycModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/kyc")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/submit", m.Handler.Submit)
		auth.GET("/status", m.Handler.Status)
	}
}
