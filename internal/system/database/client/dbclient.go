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

// Package client provides database client implementations for executing queries and managing transactions.
package client

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/asgardeo/emprest/internal/system/database/model"
	"github.com/asgardeo/emprest/internal/system/log"
)

const loggerComponentName = "DBClient"

// ExecutorInterface defines the statement execution operations shared by database clients and
// open transactions.
type ExecutorInterface interface {
	// Query executes a sql query that returns rows, typically a SELECT, and returns the result as a slice of maps.
	Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	// Execute executes a sql query without returning data in any rows, and returns number of rows affected.
	Execute(query model.DBQuery, args ...interface{}) (int64, error)
}

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	ExecutorInterface
	// BeginTx starts a new database transaction.
	BeginTx() (model.TxInterface, error)
	// Ping verifies the connection to the database.
	Ping() error
	// GetDBType returns the database type the client is connected to.
	GetDBType() string
	// Close closes the database connection.
	Close() error
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	db     model.DBInterface
	dbType string
}

// NewDBClient creates a new instance of DBClient with the provided database connection.
func NewDBClient(db model.DBInterface, dbType string) DBClientInterface {
	return &DBClient{
		db:     db,
		dbType: dbType,
	}
}

// Query executes a sql query that returns rows, typically a SELECT, and returns the result as a slice of maps.
func (client *DBClient) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Executing query", log.String("queryID", query.GetID()), log.String("dbType", client.dbType))

	rows, err := client.db.Query(rebind(client.dbType, query), args...)
	if err != nil {
		return nil, err
	}
	return scanRows(logger, rows)
}

// Execute executes a sql query without returning data in any rows, and returns number of rows affected.
func (client *DBClient) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Executing statement", log.String("queryID", query.GetID()), log.String("dbType", client.dbType))

	res, err := client.db.Exec(rebind(client.dbType, query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// BeginTx starts a new database transaction.
func (client *DBClient) BeginTx() (model.TxInterface, error) {
	tx, err := client.db.Begin()
	if err != nil {
		return nil, err
	}
	return model.NewTx(tx), nil
}

// Ping verifies the connection to the database.
func (client *DBClient) Ping() error {
	return client.db.Ping()
}

// GetDBType returns the database type the client is connected to.
func (client *DBClient) GetDBType() string {
	return client.dbType
}

// Close closes the database connection.
func (client *DBClient) Close() error {
	return client.db.Close()
}

// rebind selects the query for the database type and converts its '?' placeholders to the
// bind style of the driver.
func rebind(dbType string, query model.DBQuery) string {
	return sqlx.Rebind(sqlx.BindType(dbType), query.GetQuery(dbType))
}

// scanRows reads all rows into maps keyed by the lower-cased column name and closes the rows.
func scanRows(logger *log.Logger, rows *sql.Rows) ([]map[string]interface{}, error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logger.Error("Error closing rows", log.Error(closeErr))
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := []map[string]interface{}{}
	for rows.Next() {
		row := make([]interface{}, len(columns))
		rowPointers := make([]interface{}, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}

		if err := rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		result := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			// Normalize column names to lowercase for consistency.
			result[strings.ToLower(col)] = row[i]
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
