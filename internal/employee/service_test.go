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
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/emprest/internal/system/database/client"
	dbmodel "github.com/asgardeo/emprest/internal/system/database/model"
	"github.com/asgardeo/emprest/internal/system/error/serviceerror"
	"github.com/asgardeo/emprest/tests/mocks/databasemock"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockDBClient   *databasemock.MockDBClient
	mockDBProvider *databasemock.MockDBProvider
	service        *employeeService
}

func TestEmployeeServiceSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockDBClient = &databasemock.MockDBClient{}
	suite.mockDBProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return suite.mockDBClient, nil
		},
	}
	suite.service = &employeeService{
		dbProvider: suite.mockDBProvider,
		newStore:   newEmployeeStore,
		random:     func() float64 { return 0.5 },
		now:        func() time.Time { return time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC) },
	}
}

func (suite *EmployeeServiceTestSuite) executeReturns(rows int64, err error) {
	suite.mockDBClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return rows, err
	}
}

func (suite *EmployeeServiceTestSuite) TestResolveDataSourceName() {
	testCases := []struct {
		selector string
		expected string
	}{
		{"type2", DataSourceType2},
		{"TYPE2", DataSourceType2},
		{"Type2", DataSourceType2},
		{"type4", DataSourceType4},
		{"TYPE4", DataSourceType4},
		{"", DataSourceType4},
		{"xyz", DataSourceType4},
		{"type22", DataSourceType4},
	}

	for _, tc := range testCases {
		assert.Equal(suite.T(), tc.expected, ResolveDataSourceName(tc.selector), "selector %q", tc.selector)
	}
}

func (suite *EmployeeServiceTestSuite) TestGetAllEmployees_SelectsDataSource() {
	_, svcErr := suite.service.GetAllEmployees("TYPE2")
	suite.Require().Nil(svcErr)
	_, svcErr = suite.service.GetAllEmployees("anything")
	suite.Require().Nil(svcErr)

	assert.Equal(suite.T(), []string{DataSourceType2, DataSourceType4}, suite.mockDBProvider.GetDBClientCalls)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployee_EmptyResult() {
	employees, svcErr := suite.service.GetEmployee("type2", "999999")

	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), employees)
	assert.Empty(suite.T(), employees)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployee_MappingError() {
	suite.mockDBClient.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		row := sampleRow()
		row["edlevel"] = "eighteen"
		return []map[string]interface{}{row}, nil
	}

	employees, svcErr := suite.service.GetEmployee("type2", "000010")

	assert.Nil(suite.T(), employees)
	assert.Equal(suite.T(), &ErrorEmployeeMappingFailed, svcErr)
}

func (suite *EmployeeServiceTestSuite) TestGetAllEmployees_StoreError() {
	suite.mockDBClient.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		return nil, errors.New("connection refused")
	}

	employees, svcErr := suite.service.GetAllEmployees("type4")

	assert.Nil(suite.T(), employees)
	assert.Equal(suite.T(), &ErrorInternalServerError, svcErr)
}

func (suite *EmployeeServiceTestSuite) TestGetAllEmployees_DataSourceUnavailable() {
	suite.mockDBProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, errors.New("failed to ping database")
	}

	employees, svcErr := suite.service.GetAllEmployees("type4")

	assert.Nil(suite.T(), employees)
	assert.Equal(suite.T(), &ErrorInternalServerError, svcErr)
}

func (suite *EmployeeServiceTestSuite) TestAddEmployee() {
	suite.executeReturns(1, nil)

	outcome, svcErr := suite.service.AddEmployee("type2", "Bugs", "Bunny")

	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), Outcome{Success: true, EmpNo: "650000", Message: "employee 650000 added"}, outcome)

	args := suite.mockDBClient.ExecuteCalls[0].Args
	assert.Equal(suite.T(), []interface{}{"650000", "Bugs", "A", "Bunny", "E21", "1234", "2025-06-01",
		"Engineer", 3, "M", "1999-01-01", int64(20000), int64(1000), int64(1000)}, args)
}

func (suite *EmployeeServiceTestSuite) TestAddEmployee_EmpNoRange() {
	suite.executeReturns(1, nil)

	testCases := []struct {
		random float64
		empNo  string
	}{
		{0, "300000"},
		{0.99999999, "999999"},
		{0.25, "475000"},
	}

	for _, tc := range testCases {
		suite.service.random = func() float64 { return tc.random }
		outcome, svcErr := suite.service.AddEmployee("type4", "Daffy", "Duck")
		suite.Require().Nil(svcErr)
		assert.Equal(suite.T(), tc.empNo, outcome.EmpNo)
	}
}

func (suite *EmployeeServiceTestSuite) TestAddEmployee_NoRows() {
	suite.executeReturns(0, nil)

	outcome, svcErr := suite.service.AddEmployee("type2", "Bugs", "Bunny")

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), outcome.Success)
	assert.Equal(suite.T(), "employee insert failed try again", outcome.Message)
}

func (suite *EmployeeServiceTestSuite) TestAddEmployee_StoreError() {
	suite.executeReturns(0, errors.New("duplicate key value violates unique constraint"))

	outcome, svcErr := suite.service.AddEmployee("type4", "Bugs", "Bunny")

	assert.Equal(suite.T(), Outcome{}, outcome)
	assert.Equal(suite.T(), &ErrorInternalServerError, svcErr)
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee() {
	suite.executeReturns(1, nil)
	outcome, svcErr := suite.service.DeleteEmployee("type2", "000010")
	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), Outcome{Success: true, EmpNo: "000010", Message: "employee 000010 deleted"}, outcome)

	suite.executeReturns(0, nil)
	outcome, svcErr = suite.service.DeleteEmployee("type2", "999999")
	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), Outcome{EmpNo: "999999", Message: "employee delete failed try again"}, outcome)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployeeSalary() {
	suite.executeReturns(1, nil)
	outcome, svcErr := suite.service.UpdateEmployeeSalary("type4", "000010", 33333)
	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), "employee 000010 salary changed to 33333", outcome.Message)
	assert.True(suite.T(), outcome.Success)

	suite.executeReturns(0, nil)
	outcome, svcErr = suite.service.UpdateEmployeeSalary("type4", "999999", 1)
	suite.Require().Nil(svcErr)
	assert.Equal(suite.T(), "employee update failed try again", outcome.Message)
	assert.False(suite.T(), outcome.Success)
}

func (suite *EmployeeServiceTestSuite) newMockTx(rows int64) *databasemock.MockTx {
	mockTx := &databasemock.MockTx{
		MockExec: func(query string, args ...any) (sql.Result, error) {
			return &databasemock.MockSQLResult{
				MockRowsAffected: func() (int64, error) { return rows, nil },
			}, nil
		},
	}
	suite.mockDBClient.MockBeginTx = func() (dbmodel.TxInterface, error) {
		return mockTx, nil
	}
	return mockTx
}

func (suite *EmployeeServiceTestSuite) TestWithTransaction_Commit() {
	mockTx := suite.newMockTx(1)

	var outcome Outcome
	svcErr := suite.service.WithTransaction("type2", func(txService EmployeeServiceInterface) *serviceerror.ServiceError {
		var err *serviceerror.ServiceError
		outcome, err = txService.DeleteEmployee("type4", "000010")
		return err
	})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "employee 000010 deleted", outcome.Message)
	assert.Equal(suite.T(), 1, mockTx.CommitCalls)
	assert.Zero(suite.T(), mockTx.RollbackCalls)
	assert.Empty(suite.T(), suite.mockDBClient.ExecuteCalls)
	assert.Equal(suite.T(), []string{DataSourceType2}, suite.mockDBProvider.GetDBClientCalls)
}

func (suite *EmployeeServiceTestSuite) TestWithTransaction_NoRowsCommits() {
	mockTx := suite.newMockTx(0)

	var outcome Outcome
	svcErr := suite.service.WithTransaction("type4", func(txService EmployeeServiceInterface) *serviceerror.ServiceError {
		var err *serviceerror.ServiceError
		outcome, err = txService.UpdateEmployeeSalary("type4", "999999", 5)
		return err
	})

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), outcome.Success)
	assert.Equal(suite.T(), 1, mockTx.CommitCalls)
}

func (suite *EmployeeServiceTestSuite) TestWithTransaction_RollbackOnServiceError() {
	mockTx := suite.newMockTx(1)
	mockTx.MockExec = func(query string, args ...any) (sql.Result, error) {
		return nil, errors.New("deadlock detected")
	}

	svcErr := suite.service.WithTransaction("type4", func(txService EmployeeServiceInterface) *serviceerror.ServiceError {
		_, err := txService.AddEmployee("type4", "Bugs", "Bunny")
		return err
	})

	assert.Equal(suite.T(), &ErrorInternalServerError, svcErr)
	assert.Zero(suite.T(), mockTx.CommitCalls)
	assert.Equal(suite.T(), 1, mockTx.RollbackCalls)
}

func (suite *EmployeeServiceTestSuite) TestWithTransaction_BeginFailure() {
	suite.mockDBClient.MockBeginTx = func() (dbmodel.TxInterface, error) {
		return nil, errors.New("too many connections")
	}
	called := false

	svcErr := suite.service.WithTransaction("type2", func(txService EmployeeServiceInterface) *serviceerror.ServiceError {
		called = true
		return nil
	})

	assert.Equal(suite.T(), &ErrorTransactionFailed, svcErr)
	assert.False(suite.T(), called)
}

func (suite *EmployeeServiceTestSuite) TestWithTransaction_CommitFailure() {
	mockTx := suite.newMockTx(1)
	mockTx.MockCommit = func() error { return errors.New("serialization failure") }

	svcErr := suite.service.WithTransaction("type2", func(txService EmployeeServiceInterface) *serviceerror.ServiceError {
		_, err := txService.DeleteEmployee("type2", "000010")
		return err
	})

	assert.Equal(suite.T(), &ErrorTransactionFailed, svcErr)
}

func (suite *EmployeeServiceTestSuite) TestWithTransaction_Nested() {
	mockTx := suite.newMockTx(1)

	svcErr := suite.service.WithTransaction("type2", func(txService EmployeeServiceInterface) *serviceerror.ServiceError {
		return txService.WithTransaction("type2", func(inner EmployeeServiceInterface) *serviceerror.ServiceError {
			_, err := inner.DeleteEmployee("type2", "000010")
			return err
		})
	})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 1, suite.mockDBClient.BeginTxCalls)
	assert.Equal(suite.T(), 1, mockTx.CommitCalls)
}

func (suite *EmployeeServiceTestSuite) TestWithTransaction_DataSourceUnavailable() {
	suite.mockDBProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, errors.New("unsupported database type: oracle")
	}

	svcErr := suite.service.WithTransaction("type4", func(txService EmployeeServiceInterface) *serviceerror.ServiceError {
		return nil
	})

	assert.Equal(suite.T(), &ErrorInternalServerError, svcErr)
}
