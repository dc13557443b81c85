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

// Package seeder creates the EMP schema and loads the sample employees into a datasource.
package seeder

import (
	"fmt"

	"github.com/asgardeo/emprest/internal/system/database/client"
	"github.com/asgardeo/emprest/internal/system/log"
)

// SeederInterface defines the schema and data seeding operations.
type SeederInterface interface {
	CreateSchema() error
	SeedInitialData() error
}

// DBSeeder implements SeederInterface for database data seeding.
type DBSeeder struct {
	dbClient client.DBClientInterface
}

// NewDBSeeder creates a new instance of DBSeeder.
func NewDBSeeder(dbClient client.DBClientInterface) SeederInterface {
	return &DBSeeder{
		dbClient: dbClient,
	}
}

// CreateSchema creates the EMP table if it does not exist.
func (s *DBSeeder) CreateSchema() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	if _, err := s.dbClient.Execute(queryCreateEmployeeTable); err != nil {
		logger.Error("Failed to create EMP table", log.String("dbType", s.dbClient.GetDBType()),
			log.Error(err))
		return fmt.Errorf("failed to create EMP table: %w", err)
	}

	logger.Debug("EMP table is available", log.String("dbType", s.dbClient.GetDBType()))
	return nil
}

// SeedInitialData seeds the sample employees. Rows that already exist are left untouched.
func (s *DBSeeder) SeedInitialData() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))
	logger.Info("Starting database seeding process")

	inserted := 0
	for _, emp := range getSeedData() {
		rows, err := s.dbClient.Execute(queryInsertSeedEmployee, emp.EmpNo, emp.FirstName, emp.MidInit,
			emp.LastName, emp.WorkDept, emp.PhoneNo, emp.HireDate, emp.Job, emp.EdLevel, emp.Sex,
			emp.BirthDate, emp.Salary, emp.Bonus, emp.Comm)
		if err != nil {
			logger.Error("Failed to insert employee", log.String("empNo", emp.EmpNo), log.Error(err))
			return fmt.Errorf("failed to seed employee %s: %w", emp.EmpNo, err)
		}
		if rows > 0 {
			inserted++
			logger.Debug("Seeded employee", log.String("empNo", emp.EmpNo), log.String("lastName", emp.LastName))
		}
	}

	logger.Info("Database seeding process completed successfully", log.Int("inserted", inserted))
	return nil
}
