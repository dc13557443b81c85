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

// Package service provides health check-related business logic and operations.
package service

import (
	dbmodel "github.com/asgardeo/emprest/internal/system/database/model"
	"github.com/asgardeo/emprest/internal/system/database/provider"
	"github.com/asgardeo/emprest/internal/system/healthcheck/model"
	"github.com/asgardeo/emprest/internal/system/log"
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider provider.DBProviderInterface
}

// NewHealthCheckService creates a health check service over the datasources of the provider.
func NewHealthCheckService(dbProvider provider.DBProviderInterface) HealthCheckServiceInterface {
	return &HealthCheckService{
		DBProvider: dbProvider,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness() model.ServerStatus {
	type2DBStatus := model.ServiceStatus{
		ServiceName: "Type2DB",
		Status:      hcs.checkDatabaseStatus(provider.DataSourceType2, queryDataSourceAlive),
	}

	type4DBStatus := model.ServiceStatus{
		ServiceName: "Type4DB",
		Status:      hcs.checkDatabaseStatus(provider.DataSourceType4, queryDataSourceAlive),
	}

	status := model.StatusUp
	if type2DBStatus.Status == model.StatusDown || type4DBStatus.Status == model.StatusDown {
		status = model.StatusDown
	}
	return model.ServerStatus{
		Status: status,
		ServiceStatus: []model.ServiceStatus{
			type2DBStatus,
			type4DBStatus,
		},
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
// The client is owned by the provider and stays open.
func (hcs *HealthCheckService) checkDatabaseStatus(dbName string, query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"),
		log.String(log.LoggerKeyDataSource, dbName))

	dbClient, err := hcs.DBProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	if _, err := dbClient.Query(query); err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
