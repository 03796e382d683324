package recruitment

import (
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/web"
)

type (
	CandidateHandler  = web.CandidateHandler
	InterviewHandler  = web.InterviewHandler
	OfferHandler      = web.OfferHandler
	CandidateService  = service.CandidateService
	InterviewService  = service.InterviewService
	EvaluationService = service.EvaluationService
	Candidate         = domain.Candidate
	Interview         = domain.Interview
	Evaluation        = domain.Evaluation
	EvalStatus        = domain.EvalStatus
)

type Module struct {
	CandidateHdl  *CandidateHandler
	InterviewHdl  *InterviewHandler
	OfferHdl      *OfferHandler
	CandidateSvc  CandidateService
	EvaluationSvc EvaluationService
}
