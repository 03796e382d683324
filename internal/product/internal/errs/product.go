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

package errs

var (
	SystemError         = ErrorCode{Code: 507001, Msg: "系统错误"}
	InvalidInput        = ErrorCode{Code: 507002, Msg: "商品信息不完整"}
	InvalidListingState = ErrorCode{Code: 507003, Msg: "非法的上架状态"}
	ProductNotFound     = ErrorCode{Code: 507004, Msg: "商品不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
