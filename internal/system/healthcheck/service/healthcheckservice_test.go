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

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/emprest/internal/system/database/client"
	dbmodel "github.com/asgardeo/emprest/internal/system/database/model"
	"github.com/asgardeo/emprest/internal/system/healthcheck/model"
	"github.com/asgardeo/emprest/tests/mocks/databasemock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite
	service        HealthCheckServiceInterface
	mockDBProvider *databasemock.MockDBProvider
	mockType2DB    *databasemock.MockDBClient
	mockType4DB    *databasemock.MockDBClient
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	suite.mockType2DB = &databasemock.MockDBClient{}
	suite.mockType4DB = &databasemock.MockDBClient{DBType: dbmodel.DBTypePostgres}
	suite.mockDBProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			if dbName == "type2" {
				return suite.mockType2DB, nil
			}
			return suite.mockType4DB, nil
		},
	}
	suite.service = NewHealthCheckService(suite.mockDBProvider)
}

func queryFails(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	return nil, errors.New("database error")
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadiness() {
	testCases := []struct {
		name           string
		type2Fails     bool
		type4Fails     bool
		expectedStatus model.Status
		type2Status    model.Status
		type4Status    model.Status
	}{
		{"AllDatabasesUp", false, false, model.StatusUp, model.StatusUp, model.StatusUp},
		{"Type2DBDown", true, false, model.StatusDown, model.StatusDown, model.StatusUp},
		{"Type4DBDown", false, true, model.StatusDown, model.StatusUp, model.StatusDown},
		{"BothDBsDown", true, true, model.StatusDown, model.StatusDown, model.StatusDown},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			if tc.type2Fails {
				suite.mockType2DB.MockQuery = queryFails
			}
			if tc.type4Fails {
				suite.mockType4DB.MockQuery = queryFails
			}

			status := suite.service.CheckReadiness()

			assert.Equal(suite.T(), tc.expectedStatus, status.Status)
			suite.Require().Len(status.ServiceStatus, 2)
			assert.Equal(suite.T(), model.ServiceStatus{ServiceName: "Type2DB", Status: tc.type2Status},
				status.ServiceStatus[0])
			assert.Equal(suite.T(), model.ServiceStatus{ServiceName: "Type4DB", Status: tc.type4Status},
				status.ServiceStatus[1])
			assert.Equal(suite.T(), queryDataSourceAlive.ID, suite.mockType2DB.QueryCalls[0].Query.ID)
			assert.Zero(suite.T(), suite.mockType2DB.CloseCalls)
		})
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadiness_ClientUnavailable() {
	suite.mockDBProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		if dbName == "type4" {
			return nil, errors.New("failed to ping database")
		}
		return suite.mockType2DB, nil
	}

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	assert.Equal(suite.T(), model.StatusUp, status.ServiceStatus[0].Status)
	assert.Equal(suite.T(), model.StatusDown, status.ServiceStatus[1].Status)
	assert.Equal(suite.T(), []string{"type2", "type4"}, suite.mockDBProvider.GetDBClientCalls)
}
