package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/lakshaytakkar/team-portal/internal/asset"
	"github.com/lakshaytakkar/team-portal/internal/calendar"
	"github.com/lakshaytakkar/team-portal/internal/client"
	"github.com/lakshaytakkar/team-portal/internal/employee"
	"github.com/lakshaytakkar/team-portal/internal/pkg/middleware"
	"github.com/lakshaytakkar/team-portal/internal/product"
	"github.com/lakshaytakkar/team-portal/internal/project"
	"github.com/lakshaytakkar/team-portal/internal/recruitment"
)

func initGinxServer(sp session.Provider,
	ehdl *employee.Handler,
	candidateHdl *recruitment.CandidateHandler,
	interviewHdl *recruitment.InterviewHandler,
	offerHdl *recruitment.OfferHandler,
	clientHdl *client.Handler,
	projectHdl *project.Handler,
	assetHdl *asset.Handler,
	calendarHdl *calendar.Handler,
	productHdl *product.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "lakshaytakkar.com")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	ehdl.PrivateRoutes(res.Engine)
	candidateHdl.PrivateRoutes(res.Engine)
	interviewHdl.PrivateRoutes(res.Engine)
	offerHdl.PrivateRoutes(res.Engine)
	clientHdl.PrivateRoutes(res.Engine)
	projectHdl.PrivateRoutes(res.Engine)
	assetHdl.PrivateRoutes(res.Engine)
	calendarHdl.PrivateRoutes(res.Engine)
	productHdl.PrivateRoutes(res.Engine)
	return res
}
