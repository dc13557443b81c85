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
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	serverconst "github.com/asgardeo/emprest/internal/system/constants"
	"github.com/asgardeo/emprest/internal/system/error/serviceerror"
	"github.com/asgardeo/emprest/internal/system/log"
	sysutils "github.com/asgardeo/emprest/internal/system/utils"
)

const loggerComponentNameHandler = "EmployeeHandler"

// usageTimestampLayout renders the usage page timestamp as yyyy-MM-dd:HH-mm-ss.ffffff.
const usageTimestampLayout = "2006-01-02:15-04-05.000000"

// employeeHandler is the handler for the employee REST operations.
type employeeHandler struct {
	service EmployeeServiceInterface
	now     func() time.Time
}

// newEmployeeHandler creates a new instance of employeeHandler.
func newEmployeeHandler(service EmployeeServiceInterface) *employeeHandler {
	return &employeeHandler{
		service: service,
		now:     time.Now,
	}
}

// HandleUsageRequest writes the HTML usage page listing the routes of both datasources.
func (eh *employeeHandler) HandleUsageRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	var page strings.Builder
	fmt.Fprintf(&page, "<h1>Employee REST sample (Multiple DataSources). Date/Time: %s</h1>",
		eh.now().Format(usageTimestampLayout))
	page.WriteString("<h3>Usage: http://&lt;server&gt;:&lt;port&gt;/...</h3>")
	for _, selector := range []string{DataSourceType2, DataSourceType4} {
		fmt.Fprintf(&page, "<b>/%s/allEmployees</b> - return a list of employees<br>", selector)
		fmt.Fprintf(&page, "<b>/%s/listEmployee/{empNo}</b> - a list of employee records for the "+
			"employee number provided<br>", selector)
		page.WriteString("<br> --- Update operations --- <br>")
		fmt.Fprintf(&page, "<b>/%s/addEmployee/{firstName}/{lastName}</b> - add an employee<br>", selector)
		fmt.Fprintf(&page, "<b>/%s/deleteEmployee/{empNo}</b> - delete an employee<br>", selector)
		fmt.Fprintf(&page, "<b>/%s/updateEmployee/{empNo}/{newSalary}</b> - update employee salary<br>",
			selector)
		page.WriteString("<br> --- Update operations within a transaction --- <br>")
		fmt.Fprintf(&page, "<b>/%s/addEmployeeTx/{firstName}/{lastName}</b> - add an employee<br>", selector)
		fmt.Fprintf(&page, "<b>/%s/deleteEmployeeTx/{empNo}</b> - delete an employee<br>", selector)
		fmt.Fprintf(&page, "<b>/%s/updateEmployeeTx/{empNo}/{newSalary}</b> - update employee salary<br>",
			selector)
		page.WriteString("<br>")
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeTextHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page.String())); err != nil {
		logger.Error("Error writing usage page", log.Error(err))
	}
}

// HandleEmployeeListRequest handles the list all employees request.
func (eh *employeeHandler) HandleEmployeeListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	employees, svcErr := eh.service.GetAllEmployees(r.PathValue("selector"))
	if svcErr != nil {
		sysutils.WriteServiceError(w, svcErr)
		return
	}

	sysutils.WriteJSON(w, http.StatusOK, employees)
	logger.Debug("Successfully listed employees", log.Int("count", len(employees)))
}

// HandleEmployeeGetRequest handles the list employee by employee number request.
func (eh *employeeHandler) HandleEmployeeGetRequest(w http.ResponseWriter, r *http.Request) {
	employees, svcErr := eh.service.GetEmployee(r.PathValue("selector"), r.PathValue("empNo"))
	if svcErr != nil {
		sysutils.WriteServiceError(w, svcErr)
		return
	}

	sysutils.WriteJSON(w, http.StatusOK, employees)
}

// HandleEmployeeAddRequest handles the add employee request.
func (eh *employeeHandler) HandleEmployeeAddRequest(w http.ResponseWriter, r *http.Request) {
	eh.writeOutcome(w, r, false, addOperation(r))
}

// HandleEmployeeAddTxRequest handles the add employee request within a transaction.
func (eh *employeeHandler) HandleEmployeeAddTxRequest(w http.ResponseWriter, r *http.Request) {
	eh.writeOutcome(w, r, true, addOperation(r))
}

// HandleEmployeeDeleteRequest handles the delete employee request.
func (eh *employeeHandler) HandleEmployeeDeleteRequest(w http.ResponseWriter, r *http.Request) {
	eh.writeOutcome(w, r, false, deleteOperation(r))
}

// HandleEmployeeDeleteTxRequest handles the delete employee request within a transaction.
func (eh *employeeHandler) HandleEmployeeDeleteTxRequest(w http.ResponseWriter, r *http.Request) {
	eh.writeOutcome(w, r, true, deleteOperation(r))
}

// HandleEmployeeUpdateRequest handles the update employee salary request.
func (eh *employeeHandler) HandleEmployeeUpdateRequest(w http.ResponseWriter, r *http.Request) {
	op, svcErr := updateOperation(r)
	if svcErr != nil {
		sysutils.WriteServiceError(w, svcErr)
		return
	}
	eh.writeOutcome(w, r, false, op)
}

// HandleEmployeeUpdateTxRequest handles the update employee salary request within a transaction.
func (eh *employeeHandler) HandleEmployeeUpdateTxRequest(w http.ResponseWriter, r *http.Request) {
	op, svcErr := updateOperation(r)
	if svcErr != nil {
		sysutils.WriteServiceError(w, svcErr)
		return
	}
	eh.writeOutcome(w, r, true, op)
}

// outcomeOperation runs a mutating operation against a service.
type outcomeOperation func(service EmployeeServiceInterface, selector string) (
	Outcome, *serviceerror.ServiceError)

func addOperation(r *http.Request) outcomeOperation {
	firstName, lastName := r.PathValue("firstName"), r.PathValue("lastName")
	return func(service EmployeeServiceInterface, selector string) (Outcome, *serviceerror.ServiceError) {
		return service.AddEmployee(selector, firstName, lastName)
	}
}

func deleteOperation(r *http.Request) outcomeOperation {
	empNo := r.PathValue("empNo")
	return func(service EmployeeServiceInterface, selector string) (Outcome, *serviceerror.ServiceError) {
		return service.DeleteEmployee(selector, empNo)
	}
}

func updateOperation(r *http.Request) (outcomeOperation, *serviceerror.ServiceError) {
	empNo := r.PathValue("empNo")
	salary, err := strconv.ParseInt(r.PathValue("newSalary"), 10, 32)
	if err != nil {
		return nil, &ErrorInvalidSalary
	}
	return func(service EmployeeServiceInterface, selector string) (Outcome, *serviceerror.ServiceError) {
		return service.UpdateEmployeeSalary(selector, empNo, int(salary))
	}, nil
}

// writeOutcome runs the operation, optionally within a transaction, and writes the outcome
// message. Business failures are reported with status 200 like successes.
func (eh *employeeHandler) writeOutcome(w http.ResponseWriter, r *http.Request, transactional bool,
	op outcomeOperation) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))
	selector := r.PathValue("selector")

	var outcome Outcome
	var svcErr *serviceerror.ServiceError
	if transactional {
		svcErr = eh.service.WithTransaction(selector,
			func(txService EmployeeServiceInterface) *serviceerror.ServiceError {
				var opErr *serviceerror.ServiceError
				outcome, opErr = op(txService, selector)
				return opErr
			})
	} else {
		outcome, svcErr = op(eh.service, selector)
	}
	if svcErr != nil {
		sysutils.WriteServiceError(w, svcErr)
		return
	}

	sysutils.WriteText(w, http.StatusOK, outcome.Message)
	logger.Debug("Employee operation completed", log.String("empNo", outcome.EmpNo),
		log.Bool("success", outcome.Success), log.Bool("transactional", transactional))
}
