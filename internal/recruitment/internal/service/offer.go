package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/lakshaytakkar/team-portal/internal/email"
	"github.com/lakshaytakkar/team-portal/internal/pkg/pdf"
)

// OfferService 给通过两轮评估的候选人发 Offer 邮件，附 PDF 版的录取通知
type OfferService interface {
	Send(ctx context.Context, req OfferSendReq) error
}

type OfferSendReq struct {
	CandidateName string
	Position      string
	// Salary 前端拼好的薪资描述
	Salary string
	// JoiningTime 预计入职时间
	JoiningTime int64
	ToEmail     string
}

type offerService struct {
	emailClient  email.Service
	pdfConverter pdf.Converter
	template     string
	companyName  string
}

func NewOfferService(
	emailClient email.Service,
	pdfConverter pdf.Converter,
	template string,
	companyName string,
) OfferService {
	return &offerService{
		emailClient:  emailClient,
		pdfConverter: pdfConverter,
		template:     template,
		companyName:  companyName,
	}
}

func (o *offerService) Send(ctx context.Context, req OfferSendReq) error {
	subject := fmt.Sprintf("[%s] Offer Letter - %s", o.companyName, req.Position)

	body, err := o.render(req)
	if err != nil {
		return err
	}

	pdfBytes, err := o.pdfConverter.ConvertHTMLToPDF(ctx, body)
	if err != nil {
		return err
	}
	mail := email.Mail{
		From:    o.companyName,
		To:      req.ToEmail,
		Subject: subject,
		Body:    []byte(body),
		Attachments: []email.Attachment{
			{
				Filename: "offer-letter.pdf",
				Content:  pdfBytes,
			},
		},
	}
	return o.emailClient.SendMail(ctx, mail)
}

type offerData struct {
	CompanyName   string
	CandidateName string
	Position      string
	Salary        string
	JoiningDate   string
}

func (o *offerService) render(req OfferSendReq) (string, error) {
	t, err := template.New("offer").Parse(o.template)
	if err != nil {
		return "", err
	}
	data := offerData{
		CompanyName:   o.companyName,
		CandidateName: req.CandidateName,
		Position:      req.Position,
		Salary:        req.Salary,
		JoiningDate:   time.Unix(req.JoiningTime, 0).Format("January 2, 2006"),
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
