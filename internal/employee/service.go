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

// Package employee provides the employee data access service and its REST routes.
package employee

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/asgardeo/emprest/internal/system/database/client"
	"github.com/asgardeo/emprest/internal/system/database/provider"
	"github.com/asgardeo/emprest/internal/system/database/transaction"
	"github.com/asgardeo/emprest/internal/system/error/serviceerror"
	"github.com/asgardeo/emprest/internal/system/log"
	"github.com/asgardeo/emprest/internal/system/metrics"
)

const loggerComponentNameService = "EmployeeService"

// Defaults applied to employees created through AddEmployee.
const (
	empNoMin         = 300000
	empNoSpan        = 699999
	defaultMidInit   = "A"
	defaultWorkDept  = "E21"
	defaultPhoneNo   = "1234"
	defaultJob       = "Engineer"
	defaultEdLevel   = 3
	defaultSex       = "M"
	defaultBirthDate = "1999-01-01"
	defaultSalary    = 20000
	defaultBonus     = 1000
	defaultComm      = 1000
)

// Operation names used as metric labels.
const (
	operationList   = "list"
	operationGet    = "get"
	operationAdd    = "add"
	operationDelete = "delete"
	operationUpdate = "update"
)

// errTransactionAborted rolls back a transaction whose function returned a service error.
var errTransactionAborted = errors.New("transaction aborted by service error")

// EmployeeServiceInterface defines the interface for employee service operations.
type EmployeeServiceInterface interface {
	GetAllEmployees(selector string) ([]Employee, *serviceerror.ServiceError)
	GetEmployee(selector, empNo string) ([]Employee, *serviceerror.ServiceError)
	AddEmployee(selector, firstName, lastName string) (Outcome, *serviceerror.ServiceError)
	DeleteEmployee(selector, empNo string) (Outcome, *serviceerror.ServiceError)
	UpdateEmployeeSalary(selector, empNo string, salary int) (Outcome, *serviceerror.ServiceError)
	WithTransaction(selector string, fn func(txService EmployeeServiceInterface) *serviceerror.ServiceError,
	) *serviceerror.ServiceError
}

// employeeService is the default implementation of EmployeeServiceInterface.
type employeeService struct {
	dbProvider provider.DBProviderInterface
	newStore   func(executor client.ExecutorInterface) employeeStoreInterface
	random     func() float64
	now        func() time.Time

	// txExecutor and txDataSource are set on services bound to an open transaction.
	txExecutor   client.ExecutorInterface
	txDataSource string
}

// newEmployeeService creates a new instance of employeeService.
func newEmployeeService(dbProvider provider.DBProviderInterface) EmployeeServiceInterface {
	return &employeeService{
		dbProvider: dbProvider,
		newStore:   newEmployeeStore,
		random:     rand.Float64,
		now:        time.Now,
	}
}

// ResolveDataSourceName returns the datasource name for a selector. A case-insensitive match on
// "type2" selects type2 and every other value selects type4.
func ResolveDataSourceName(selector string) string {
	if strings.EqualFold(selector, DataSourceType2) {
		return DataSourceType2
	}
	return DataSourceType4
}

// GetAllEmployees retrieves all employees from the selected datasource.
func (es *employeeService) GetAllEmployees(selector string) ([]Employee, *serviceerror.ServiceError) {
	store, dataSource, svcErr := es.getStore(selector)
	if svcErr != nil {
		return nil, svcErr
	}

	employees, err := store.GetEmployeeList()
	if err != nil {
		return nil, es.handleStoreError(operationList, dataSource, err)
	}

	metrics.RecordEmployeeOperation(operationList, dataSource, metrics.ResultSuccess)
	return employees, nil
}

// GetEmployee retrieves the employees with the employee number. An empty list is returned when
// no employee matches.
func (es *employeeService) GetEmployee(selector, empNo string) ([]Employee, *serviceerror.ServiceError) {
	store, dataSource, svcErr := es.getStore(selector)
	if svcErr != nil {
		return nil, svcErr
	}

	employees, err := store.GetEmployee(empNo)
	if err != nil {
		return nil, es.handleStoreError(operationGet, dataSource, err)
	}

	result := metrics.ResultSuccess
	if len(employees) == 0 {
		result = metrics.ResultNoRows
	}
	metrics.RecordEmployeeOperation(operationGet, dataSource, result)
	return employees, nil
}

// AddEmployee creates an employee with a generated employee number and default attributes.
func (es *employeeService) AddEmployee(selector, firstName, lastName string) (
	Outcome, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	store, dataSource, svcErr := es.getStore(selector)
	if svcErr != nil {
		return Outcome{}, svcErr
	}

	emp := Employee{
		EmpNo:     es.generateEmpNo(),
		FirstName: firstName,
		MidInit:   defaultMidInit,
		LastName:  lastName,
		WorkDept:  defaultWorkDept,
		PhoneNo:   defaultPhoneNo,
		HireDate:  NewDate(es.now()),
		Job:       defaultJob,
		EdLevel:   defaultEdLevel,
		Sex:       defaultSex,
		BirthDate: defaultBirthDate,
		Salary:    defaultSalary,
		Bonus:     defaultBonus,
		Comm:      defaultComm,
	}

	rows, err := store.CreateEmployee(emp)
	if err != nil {
		return Outcome{}, es.handleStoreError(operationAdd, dataSource, err)
	}
	if rows == 0 {
		metrics.RecordEmployeeOperation(operationAdd, dataSource, metrics.ResultNoRows)
		return Outcome{EmpNo: emp.EmpNo, Message: "employee insert failed try again"}, nil
	}

	metrics.RecordEmployeeOperation(operationAdd, dataSource, metrics.ResultSuccess)
	logger.Debug("Employee added", log.String("empNo", emp.EmpNo), log.String(log.LoggerKeyDataSource, dataSource))
	return Outcome{Success: true, EmpNo: emp.EmpNo, Message: fmt.Sprintf("employee %s added", emp.EmpNo)}, nil
}

// DeleteEmployee deletes the employee with the employee number.
func (es *employeeService) DeleteEmployee(selector, empNo string) (Outcome, *serviceerror.ServiceError) {
	store, dataSource, svcErr := es.getStore(selector)
	if svcErr != nil {
		return Outcome{}, svcErr
	}

	rows, err := store.DeleteEmployee(empNo)
	if err != nil {
		return Outcome{}, es.handleStoreError(operationDelete, dataSource, err)
	}
	if rows == 0 {
		metrics.RecordEmployeeOperation(operationDelete, dataSource, metrics.ResultNoRows)
		return Outcome{EmpNo: empNo, Message: "employee delete failed try again"}, nil
	}

	metrics.RecordEmployeeOperation(operationDelete, dataSource, metrics.ResultSuccess)
	return Outcome{Success: true, EmpNo: empNo, Message: fmt.Sprintf("employee %s deleted", empNo)}, nil
}

// UpdateEmployeeSalary sets the salary of the employee with the employee number.
func (es *employeeService) UpdateEmployeeSalary(selector, empNo string, salary int) (
	Outcome, *serviceerror.ServiceError) {
	store, dataSource, svcErr := es.getStore(selector)
	if svcErr != nil {
		return Outcome{}, svcErr
	}

	rows, err := store.UpdateEmployeeSalary(empNo, salary)
	if err != nil {
		return Outcome{}, es.handleStoreError(operationUpdate, dataSource, err)
	}
	if rows == 0 {
		metrics.RecordEmployeeOperation(operationUpdate, dataSource, metrics.ResultNoRows)
		return Outcome{EmpNo: empNo, Message: "employee update failed try again"}, nil
	}

	metrics.RecordEmployeeOperation(operationUpdate, dataSource, metrics.ResultSuccess)
	return Outcome{
		Success: true,
		EmpNo:   empNo,
		Message: fmt.Sprintf("employee %s salary changed to %d", empNo, salary),
	}, nil
}

// WithTransaction runs fn with a service bound to a transaction on the selected datasource.
// The transaction commits when fn returns nil and rolls back when fn returns an error or panics.
// Operations of the bound service always run on the transaction, whatever selector they receive.
func (es *employeeService) WithTransaction(selector string,
	fn func(txService EmployeeServiceInterface) *serviceerror.ServiceError) *serviceerror.ServiceError {
	if es.txExecutor != nil {
		return fn(es)
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	dataSource := ResolveDataSourceName(selector)

	dbClient, err := es.dbProvider.GetDBClient(dataSource)
	if err != nil {
		logger.Error("Failed to get database client", log.String(log.LoggerKeyDataSource, dataSource),
			log.Error(err))
		return &ErrorInternalServerError
	}

	var fnErr *serviceerror.ServiceError
	err = transaction.WithTx(dbClient, func(executor client.ExecutorInterface) error {
		txService := *es
		txService.txExecutor = executor
		txService.txDataSource = dataSource

		if fnErr = fn(&txService); fnErr != nil {
			return errTransactionAborted
		}
		return nil
	})

	if fnErr != nil {
		if err != nil && !errors.Is(err, errTransactionAborted) {
			logger.Error("Transaction rollback failed", log.String(log.LoggerKeyDataSource, dataSource),
				log.Error(err))
		}
		return fnErr
	}
	if err != nil {
		logger.Error("Transaction failed", log.String(log.LoggerKeyDataSource, dataSource), log.Error(err))
		return &ErrorTransactionFailed
	}
	return nil
}

// getStore returns a store for the selected datasource, or for the bound transaction.
func (es *employeeService) getStore(selector string) (
	employeeStoreInterface, string, *serviceerror.ServiceError) {
	if es.txExecutor != nil {
		return es.newStore(es.txExecutor), es.txDataSource, nil
	}

	dataSource := ResolveDataSourceName(selector)
	dbClient, err := es.dbProvider.GetDBClient(dataSource)
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
		logger.Error("Failed to get database client", log.String(log.LoggerKeyDataSource, dataSource),
			log.Error(err))
		return nil, dataSource, &ErrorInternalServerError
	}
	return es.newStore(dbClient), dataSource, nil
}

// handleStoreError logs the store error and maps it to a service error.
func (es *employeeService) handleStoreError(operation, dataSource string,
	err error) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	logger.Error("Employee operation failed", log.String("operation", operation),
		log.String(log.LoggerKeyDataSource, dataSource), log.Error(err))
	metrics.RecordEmployeeOperation(operation, dataSource, metrics.ResultError)

	if errors.Is(err, ErrMappingError) {
		return &ErrorEmployeeMappingFailed
	}
	return &ErrorInternalServerError
}

// generateEmpNo returns a random employee number in the range [300000, 999999].
func (es *employeeService) generateEmpNo() string {
	return strconv.Itoa(int(math.Round(es.random()*empNoSpan)) + empNoMin)
}
