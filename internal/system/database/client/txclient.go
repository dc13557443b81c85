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

package client

import (
	"github.com/asgardeo/emprest/internal/system/database/model"
	"github.com/asgardeo/emprest/internal/system/log"
)

// TxClient runs queries inside an open database transaction.
type TxClient struct {
	tx     model.TxInterface
	dbType string
}

// NewTxClient creates an executor bound to the given transaction.
func NewTxClient(tx model.TxInterface, dbType string) ExecutorInterface {
	return &TxClient{
		tx:     tx,
		dbType: dbType,
	}
}

// Query executes a sql query that returns rows within the transaction.
func (client *TxClient) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TxClient"))
	logger.Debug("Executing query in transaction", log.String("queryID", query.GetID()))

	rows, err := client.tx.Query(rebind(client.dbType, query), args...)
	if err != nil {
		return nil, err
	}
	return scanRows(logger, rows)
}

// Execute executes a sql statement within the transaction and returns number of rows affected.
func (client *TxClient) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TxClient"))
	logger.Debug("Executing statement in transaction", log.String("queryID", query.GetID()))

	res, err := client.tx.Exec(rebind(client.dbType, query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
