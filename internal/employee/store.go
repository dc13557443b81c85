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

	"github.com/asgardeo/emprest/internal/system/database/client"
)

// employeeStoreInterface defines the interface for employee store operations.
type employeeStoreInterface interface {
	GetEmployeeList() ([]Employee, error)
	GetEmployee(empNo string) ([]Employee, error)
	CreateEmployee(emp Employee) (int64, error)
	DeleteEmployee(empNo string) (int64, error)
	UpdateEmployeeSalary(empNo string, salary int) (int64, error)
}

// employeeStore is the default implementation of employeeStoreInterface. It runs its queries on
// a database client or an open transaction.
type employeeStore struct {
	executor client.ExecutorInterface
}

// newEmployeeStore creates a new instance of employeeStore bound to the executor.
func newEmployeeStore(executor client.ExecutorInterface) employeeStoreInterface {
	return &employeeStore{
		executor: executor,
	}
}

// GetEmployeeList retrieves all employees.
func (s *employeeStore) GetEmployeeList() ([]Employee, error) {
	results, err := s.executor.Query(queryGetEmployeeList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return buildEmployeesFromResultRows(results)
}

// GetEmployee retrieves the employees with the given employee number.
func (s *employeeStore) GetEmployee(empNo string) ([]Employee, error) {
	results, err := s.executor.Query(queryGetEmployeeByEmpNo, empNo)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return buildEmployeesFromResultRows(results)
}

// CreateEmployee inserts the employee and returns the number of rows inserted.
func (s *employeeStore) CreateEmployee(emp Employee) (int64, error) {
	rows, err := s.executor.Execute(queryCreateEmployee, emp.EmpNo, emp.FirstName, emp.MidInit, emp.LastName,
		emp.WorkDept, emp.PhoneNo, emp.HireDate.String(), emp.Job, emp.EdLevel, emp.Sex, emp.BirthDate,
		emp.Salary, emp.Bonus, emp.Comm)
	if err != nil {
		return 0, fmt.Errorf("failed to execute insert: %w", err)
	}
	return rows, nil
}

// DeleteEmployee deletes the employee and returns the number of rows deleted.
func (s *employeeStore) DeleteEmployee(empNo string) (int64, error) {
	rows, err := s.executor.Execute(queryDeleteEmployee, empNo)
	if err != nil {
		return 0, fmt.Errorf("failed to execute delete: %w", err)
	}
	return rows, nil
}

// UpdateEmployeeSalary sets the salary of the employee and returns the number of rows updated.
func (s *employeeStore) UpdateEmployeeSalary(empNo string, salary int) (int64, error) {
	rows, err := s.executor.Execute(queryUpdateEmployeeSalary, salary, empNo)
	if err != nil {
		return 0, fmt.Errorf("failed to execute update: %w", err)
	}
	return rows, nil
}

// buildEmployeesFromResultRows maps result rows to employees. The result is never nil.
func buildEmployeesFromResultRows(results []map[string]interface{}) ([]Employee, error) {
	employees := make([]Employee, 0, len(results))
	for _, row := range results {
		emp, err := mapEmployee(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}
