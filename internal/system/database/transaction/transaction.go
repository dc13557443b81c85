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

// Package transaction provides a scoped transaction helper over the database clients.
package transaction

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asgardeo/emprest/internal/system/database/client"
	"github.com/asgardeo/emprest/internal/system/log"
)

var (
	// ErrBeginFailed is returned when a transaction cannot be started.
	ErrBeginFailed = errors.New("failed to begin transaction")
	// ErrCommitFailed is returned when a transaction cannot be committed.
	ErrCommitFailed = errors.New("failed to commit transaction")
	// ErrRollbackFailed is joined with the original error when the rollback also fails.
	ErrRollbackFailed = errors.New("failed to roll back transaction")
)

// WithTx begins a transaction on the client and passes an executor bound to it to fn.
// The transaction is committed when fn returns nil and rolled back when fn returns an error
// or panics. A panic is re-raised after the rollback.
func WithTx(dbClient client.DBClientInterface, fn func(exec client.ExecutorInterface) error) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Transaction"),
		log.String(log.LoggerKeyTransactionID, uuid.NewString()))

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginFailed, err)
	}
	logger.Debug("Transaction started", log.String("dbType", dbClient.GetDBType()))

	done := false
	defer func() {
		if done {
			return
		}
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Error("Failed to roll back transaction after panic", log.Error(rbErr))
			}
			panic(p)
		}
	}()

	if err := fn(client.NewTxClient(tx, dbClient.GetDBType())); err != nil {
		done = true
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Failed to roll back transaction", log.Error(rbErr))
			return errors.Join(err, fmt.Errorf("%w: %w", ErrRollbackFailed, rbErr))
		}
		logger.Debug("Transaction rolled back", log.Error(err))
		return err
	}

	done = true
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	logger.Debug("Transaction committed")
	return nil
}
