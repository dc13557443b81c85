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
	dbmodel "github.com/asgardeo/emprest/internal/system/database/model"
)

var (
	// queryGetEmployeeList is the query to list all employees.
	queryGetEmployeeList = dbmodel.DBQuery{
		ID:    "EMQ-EMP_MGT-01",
		Query: "SELECT * FROM EMP",
	}
	// queryGetEmployeeByEmpNo is the query to get the employees with an employee number.
	queryGetEmployeeByEmpNo = dbmodel.DBQuery{
		ID:    "EMQ-EMP_MGT-02",
		Query: "SELECT * FROM EMP WHERE EMPNO = ?",
	}
	// queryCreateEmployee is the query to insert an employee.
	queryCreateEmployee = dbmodel.DBQuery{
		ID: "EMQ-EMP_MGT-03",
		Query: "INSERT INTO EMP (EMPNO, FIRSTNME, MIDINIT, LASTNAME, WORKDEPT, PHONENO, HIREDATE, JOB, " +
			"EDLEVEL, SEX, BIRTHDATE, SALARY, BONUS, COMM) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
	}
	// queryDeleteEmployee is the query to delete an employee.
	queryDeleteEmployee = dbmodel.DBQuery{
		ID:    "EMQ-EMP_MGT-04",
		Query: "DELETE FROM EMP WHERE EMPNO = ?",
	}
	// queryUpdateEmployeeSalary is the query to change the salary of an employee.
	queryUpdateEmployeeSalary = dbmodel.DBQuery{
		ID:    "EMQ-EMP_MGT-05",
		Query: "UPDATE EMP SET SALARY = ? WHERE EMPNO = ?",
	}
)
