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

package model

const (
	// DBTypePostgres is the database type served by the lib/pq driver.
	DBTypePostgres = "postgres"
	// DBTypePgx is the database type served by the pgx stdlib driver.
	DBTypePgx = "pgx"
	// DBTypeSQLite is the database type served by the embedded sqlite driver.
	DBTypeSQLite = "sqlite"
	// DBTypeMySQL is the database type served by the mysql driver.
	DBTypeMySQL = "mysql"
)

// DBQueryInterface defines the interface for database queries.
type DBQueryInterface interface {
	GetID() string
	GetQuery(dbType string) string
}

// DBQuery represents a database query with an identifier and the SQL query string.
// Query is the portable form written with '?' placeholders. The dialect specific fields
// override it for the matching database type.
type DBQuery struct {
	// ID is the unique identifier for the query.
	ID string `json:"id"`
	// Query is the SQL query string.
	Query string `json:"query"`
	// PostgresQuery is the query used for postgres and pgx databases.
	PostgresQuery string `json:"postgres_query,omitempty"`
	// SQLiteQuery is the query used for sqlite databases.
	SQLiteQuery string `json:"sqlite_query,omitempty"`
	// MySQLQuery is the query used for mysql databases.
	MySQLQuery string `json:"mysql_query,omitempty"`
}

var _ DBQueryInterface = DBQuery{}

// GetID returns the unique identifier for the query.
func (d DBQuery) GetID() string {
	return d.ID
}

// GetQuery returns the SQL query string for the given database type.
func (d DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case DBTypePostgres, DBTypePgx:
		if d.PostgresQuery != "" {
			return d.PostgresQuery
		}
	case DBTypeSQLite:
		if d.SQLiteQuery != "" {
			return d.SQLiteQuery
		}
	case DBTypeMySQL:
		if d.MySQLQuery != "" {
			return d.MySQLQuery
		}
	}
	return d.Query
}
