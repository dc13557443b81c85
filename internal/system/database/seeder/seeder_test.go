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

package seeder

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/emprest/internal/system/database/client"
	"github.com/asgardeo/emprest/internal/system/database/model"
	"github.com/asgardeo/emprest/tests/mocks/databasemock"

	_ "modernc.org/sqlite"
)

var countEmployeesQuery = model.DBQuery{
	ID:    "SDQ-TEST-01",
	Query: "SELECT COUNT(*) AS TOTAL FROM EMP",
}

// SeederTestSuite is the test suite for the seeder package.
type SeederTestSuite struct {
	suite.Suite
	db       *sql.DB
	dbClient client.DBClientInterface
	seeder   SeederInterface
}

// TestSeederTestSuite runs the test suite.
func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

// SetupTest opens a fresh in-memory sqlite database.
func (suite *SeederTestSuite) SetupTest() {
	db, err := sql.Open("sqlite", ":memory:")
	suite.Require().NoError(err)
	db.SetMaxOpenConns(1)

	suite.db = db
	suite.dbClient = client.NewDBClient(model.NewDB(db), model.DBTypeSQLite)
	suite.seeder = NewDBSeeder(suite.dbClient)
}

func (suite *SeederTestSuite) TearDownTest() {
	_ = suite.db.Close()
}

func (suite *SeederTestSuite) countEmployees() int64 {
	rows, err := suite.dbClient.Query(countEmployeesQuery)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	return rows[0]["total"].(int64)
}

// TestNewDBSeeder tests the creation of a new DBSeeder instance.
func (suite *SeederTestSuite) TestNewDBSeeder() {
	seeder := NewDBSeeder(suite.dbClient)
	assert.NotNil(suite.T(), seeder)
	assert.IsType(suite.T(), &DBSeeder{}, seeder)
}

func (suite *SeederTestSuite) TestCreateSchema_Idempotent() {
	suite.Require().NoError(suite.seeder.CreateSchema())
	suite.Require().NoError(suite.seeder.CreateSchema())

	assert.Equal(suite.T(), int64(0), suite.countEmployees())
}

func (suite *SeederTestSuite) TestSeedInitialData_Success() {
	suite.Require().NoError(suite.seeder.CreateSchema())

	err := suite.seeder.SeedInitialData()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(len(getSeedData())), suite.countEmployees())
}

func (suite *SeederTestSuite) TestSeedInitialData_RunTwice() {
	suite.Require().NoError(suite.seeder.CreateSchema())
	suite.Require().NoError(suite.seeder.SeedInitialData())

	err := suite.seeder.SeedInitialData()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(len(getSeedData())), suite.countEmployees())
}

func (suite *SeederTestSuite) TestSeedInitialData_MissingTable() {
	err := suite.seeder.SeedInitialData()

	assert.Error(suite.T(), err)
}

func (suite *SeederTestSuite) TestSeedInitialData_DatabaseError() {
	mockClient := &databasemock.MockDBClient{
		MockExecute: func(query model.DBQuery, args ...interface{}) (int64, error) {
			return 0, errors.New("disk I/O error")
		},
	}

	err := NewDBSeeder(mockClient).SeedInitialData()

	assert.ErrorContains(suite.T(), err, "failed to seed employee 000010")
	assert.Len(suite.T(), mockClient.ExecuteCalls, 1)
}

func (suite *SeederTestSuite) TestCreateSchema_DatabaseError() {
	mockClient := &databasemock.MockDBClient{
		DBType: model.DBTypePostgres,
		MockExecute: func(query model.DBQuery, args ...interface{}) (int64, error) {
			return 0, errors.New("permission denied")
		},
	}

	err := NewDBSeeder(mockClient).CreateSchema()

	assert.ErrorContains(suite.T(), err, "permission denied")
	assert.Equal(suite.T(), queryCreateEmployeeTable.ID, mockClient.ExecuteCalls[0].Query.ID)
}

// TestGetSeedData tests the seed data retrieval.
func (suite *SeederTestSuite) TestGetSeedData() {
	data := getSeedData()

	assert.NotEmpty(suite.T(), data)
	assert.Equal(suite.T(), "000010", data[0].EmpNo)
	assert.Equal(suite.T(), "HAAS", data[0].LastName)

	seen := map[string]bool{}
	for _, emp := range data {
		assert.Len(suite.T(), emp.EmpNo, 6)
		assert.False(suite.T(), seen[emp.EmpNo], "duplicate EMPNO %s", emp.EmpNo)
		seen[emp.EmpNo] = true
	}
}
