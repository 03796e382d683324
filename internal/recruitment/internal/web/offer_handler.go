package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/service"
)

type OfferHandler struct {
	svc service.OfferService
}

func NewOfferHandler(svc service.OfferService) *OfferHandler {
	return &OfferHandler{svc: svc}
}

func (h *OfferHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/offer/send", ginx.B[OfferSendReq](h.Send))
}

func (h *OfferHandler) PublicRoutes(_ *gin.Engine) {}

// Send 发送 Offer 到候选人邮箱
// POST /offer/send
func (h *OfferHandler) Send(ctx *ginx.Context, req OfferSendReq) (ginx.Result, error) {
	err := h.svc.Send(ctx, service.OfferSendReq{
		ToEmail:       req.Email,
		CandidateName: req.CandidateName,
		Position:      req.Position,
		Salary:        req.Salary,
		JoiningTime:   req.JoiningTime,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
