package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
	handlers "github.com/veridoc/kyc-portal/internal/interface/http"
	"github.com/veridoc/kyc-portal/internal/interface/middleware"
	"github.com/veridoc/kyc-portal/pkg/helpers"
)

// AdminModule wires the review workflow routes. Every route requires a
// valid token plus the review capability.
//
//	GET /api/admin/all
//	PUT /api/admin/update/:id
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.Require(entity.CapReviewSubmissions))
	{
		admin.GET("/all", m.Handler.ListAll)
		admin.PUT("/update/:id", m.Handler.UpdateStatus)
	}
}
