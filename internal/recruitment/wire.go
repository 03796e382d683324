// Copyright 2025 lakshaytakkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package recruitment

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/lakshaytakkar/team-portal/internal/email"
	"github.com/lakshaytakkar/team-portal/internal/email/aliyun"
	"github.com/lakshaytakkar/team-portal/internal/employee"
	"github.com/lakshaytakkar/team-portal/internal/pkg/pdf"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository/dao"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/web"
)

func InitModule(db *egorm.Component, em *employee.Module) (*Module, error) {
	wire.Build(
		initDAOs,
		repository.NewCandidateRepository,
		repository.NewInterviewRepository,
		repository.NewEvaluationRepository,
		wire.FieldsOf(new(*employee.Module), "Rsv"),
		service.NewCandidateService,
		service.NewInterviewService,
		service.NewEvaluationService,
		web.NewCandidateHandler,
		web.NewInterviewHandler,
		initOfferHdl,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initDAOs(db *egorm.Component) (dao.CandidateDAO, dao.InterviewDAO, dao.EvaluationDAO) {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMCandidateDAO(db),
		dao.NewGORMInterviewDAO(db),
		dao.NewGORMEvaluationDAO(db)
}

func initOfferHdl() *web.OfferHandler {
	emailCli := initEmailClient()
	converter := initPDFConverter()
	oSvc := service.NewOfferService(
		emailCli,
		converter,
		econf.GetString("offer.template"),
		econf.GetString("offer.companyName"),
	)
	return web.NewOfferHandler(oSvc)
}

func initPDFConverter() pdf.Converter {
	type cfg struct {
		Endpoint string `yaml:"endpoint"`
	}
	var c cfg
	// pdf 服务地址，例如: pdf.endpoint: http://localhost:9999/pdf/convert
	err := econf.UnmarshalKey("pdf", &c)
	if err != nil {
		panic(err)
	}
	return pdf.NewRemoteConverter(c.Endpoint)
}

func initEmailClient() email.Service {
	type Cfg struct {
		AccessID     string `yaml:"accessId"`
		AccessSecret string `yaml:"accessSecret"`
		AccountName  string `yaml:"accountName"`
	}
	var cfg Cfg
	// email.ali 配置
	_ = econf.UnmarshalKey("email.ali", &cfg)
	cli, err := aliyun.NewAliyunDirectMailAPI(cfg.AccessID, cfg.AccessSecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return cli
}
