// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

// MySQL server error codes surfaced to clients.
// https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	ER_PARSE_ERROR        uint16 = 1064
	ER_UNKNOWN_ERROR      uint16 = 1105
	ER_CANT_FIND_UDF      uint16 = 1122
	ER_UDF_ALREADY_EXISTS uint16 = 1125
	ER_NOT_SUPPORTED_YET  uint16 = 1235
	ER_QUERY_INTERRUPTED  uint16 = 1317
	ER_SYNTAX_ERROR       uint16 = 1149
)
