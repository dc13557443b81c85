/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package employee

import (
	"net/http"

	"github.com/asgardeo/emprest/internal/system/database/provider"
)

// Initialize initializes the employee service and registers its routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface) EmployeeServiceInterface {
	employeeService := newEmployeeService(dbProvider)
	employeeHandler := newEmployeeHandler(employeeService)
	registerRoutes(mux, employeeHandler)
	return employeeService
}

// registerRoutes registers the routes for employee operations.
func registerRoutes(mux *http.ServeMux, employeeHandler *employeeHandler) {
	mux.HandleFunc("GET /{$}", employeeHandler.HandleUsageRequest)

	mux.HandleFunc("GET /{selector}/allEmployees", employeeHandler.HandleEmployeeListRequest)
	mux.HandleFunc("GET /{selector}/allEmployees/{$}", employeeHandler.HandleEmployeeListRequest)
	mux.HandleFunc("GET /{selector}/listEmployee/{empNo}", employeeHandler.HandleEmployeeGetRequest)

	mux.HandleFunc("GET /{selector}/addEmployee/{firstName}/{lastName}",
		employeeHandler.HandleEmployeeAddRequest)
	mux.HandleFunc("GET /{selector}/deleteEmployee/{empNo}", employeeHandler.HandleEmployeeDeleteRequest)
	mux.HandleFunc("GET /{selector}/updateEmployee/{empNo}/{newSalary}",
		employeeHandler.HandleEmployeeUpdateRequest)

	mux.HandleFunc("GET /{selector}/addEmployeeTx/{firstName}/{lastName}",
		employeeHandler.HandleEmployeeAddTxRequest)
	mux.HandleFunc("GET /{selector}/deleteEmployeeTx/{empNo}", employeeHandler.HandleEmployeeDeleteTxRequest)
	mux.HandleFunc("GET /{selector}/updateEmployeeTx/{empNo}/{newSalary}",
		employeeHandler.HandleEmployeeUpdateTxRequest)
}
