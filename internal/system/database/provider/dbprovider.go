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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/asgardeo/emprest/internal/system/config"
	"github.com/asgardeo/emprest/internal/system/database/client"
	"github.com/asgardeo/emprest/internal/system/database/model"
	"github.com/asgardeo/emprest/internal/system/database/seeder"
	"github.com/asgardeo/emprest/internal/system/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	// DataSourceType2 is the name of the local (in-process) datasource.
	DataSourceType2 = "type2"
	// DataSourceType4 is the name of the network datasource.
	DataSourceType4 = "type4"

	sqliteInMemory = ":memory:"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// managedClient holds the client of one named datasource.
type managedClient struct {
	name       string
	dataSource config.DataSource
	client     client.DBClientInterface
	mutex      sync.RWMutex
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	serverHome string
	clients    map[string]*managedClient
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the process wide DBProvider built from the server runtime configuration.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		runtime := config.GetServerRuntime()
		instance = NewDBProvider(runtime.ServerHome, runtime.Config.Database)
		instance.initializeAllClients()
		instance.closeOnInterrupt()
	})
	return instance
}

// NewDBProvider creates a DBProvider for the two configured datasources. Clients are created
// on first use.
func NewDBProvider(serverHome string, dbConfig config.DatabaseConfig) *DBProvider {
	return &DBProvider{
		serverHome: serverHome,
		clients: map[string]*managedClient{
			DataSourceType2: {name: DataSourceType2, dataSource: dbConfig.Type2},
			DataSourceType4: {name: DataSourceType4, dataSource: dbConfig.Type4},
		},
	}
}

// GetDBClient returns a database client based on the provided datasource name.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	mc, ok := d.clients[dbName]
	if !ok {
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
	return d.getOrInitClient(mc)
}

// initializeAllClients initializes both datasource clients at startup.
func (d *DBProvider) initializeAllClients() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	for _, name := range []string{DataSourceType2, DataSourceType4} {
		if _, err := d.getOrInitClient(d.clients[name]); err != nil {
			logger.Error("Failed to initialize database client", log.String(log.LoggerKeyDataSource, name),
				log.Error(err))
		}
	}
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(mc *managedClient) (client.DBClientInterface, error) {
	mc.mutex.RLock()
	if mc.client != nil {
		dbClient := mc.client
		mc.mutex.RUnlock()
		return dbClient, nil
	}
	mc.mutex.RUnlock()

	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	if mc.client != nil {
		return mc.client, nil
	}

	dbClient, err := d.initializeClient(mc.name, mc.dataSource)
	if err != nil {
		return nil, err
	}
	mc.client = dbClient

	return dbClient, nil
}

// initializeClient opens, verifies and prepares a database client for the data source.
func (d *DBProvider) initializeClient(name string, dataSource config.DataSource) (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"),
		log.String(log.LoggerKeyDataSource, name))

	dbConfig, err := d.getDBConfig(dataSource)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration for datasource %s: %w", name, err)
	}

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to datasource %s: %w", name, err)
	}

	// Configure connection pool using values from configuration. Zero keeps the driver default.
	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	dbClient := client.NewDBClient(model.NewDB(db), dataSource.Type)
	if err := prepareClient(dbClient, dataSource); err != nil {
		if closeErr := dbClient.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to prepare datasource %s: %w (close error: %w)", name, err, closeErr)
		}
		return nil, fmt.Errorf("failed to prepare datasource %s: %w", name, err)
	}

	logger.Info("Database client initialized", log.String("dbType", dataSource.Type),
		log.String("username", log.MaskString(dataSource.Username)))
	return dbClient, nil
}

// prepareClient pings the database and applies the per datasource setup.
func prepareClient(dbClient client.DBClientInterface, dataSource config.DataSource) error {
	if err := dbClient.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Enable foreign key constraints for SQLite databases
	if dataSource.Type == model.DBTypeSQLite {
		if _, err := dbClient.Execute(queryEnableForeignKeys); err != nil {
			return fmt.Errorf("failed to enable foreign key constraints: %w", err)
		}
	}

	dbSeeder := seeder.NewDBSeeder(dbClient)
	if dataSource.InitSchema {
		if err := dbSeeder.CreateSchema(); err != nil {
			return err
		}
	}
	if dataSource.SeedData {
		if err := dbSeeder.SeedInitialData(); err != nil {
			return err
		}
	}
	return nil
}

// getDBConfig returns the driver name and DSN for the provided data source.
func (d *DBProvider) getDBConfig(dataSource config.DataSource) (dbConfig, error) {
	switch dataSource.Type {
	case model.DBTypePostgres, model.DBTypePgx:
		return dbConfig{
			driverName: dataSource.Type,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case model.DBTypeSQLite:
		dbPath := dataSource.Path
		if dbPath != sqliteInMemory && !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(d.serverHome, dbPath)
		}
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		return dbConfig{driverName: model.DBTypeSQLite, dsn: dbPath + options}, nil
	case model.DBTypeMySQL:
		mysqlConfig := mysql.NewConfig()
		mysqlConfig.User = dataSource.Username
		mysqlConfig.Passwd = dataSource.Password
		mysqlConfig.Net = "tcp"
		mysqlConfig.Addr = net.JoinHostPort(dataSource.Hostname, strconv.Itoa(dataSource.Port))
		mysqlConfig.DBName = dataSource.Name
		mysqlConfig.ParseTime = true
		return dbConfig{driverName: model.DBTypeMySQL, dsn: mysqlConfig.FormatDSN()}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}

// closeOnInterrupt sets up signal handling for graceful shutdown
func (d *DBProvider) closeOnInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger := log.GetLogger()
		if err := d.close(); err != nil {
			logger.Error("Error closing database connections", log.Error(err))
		} else {
			logger.Debug("Database connections closed successfully")
		}
	}()
}

// close closes the database connections
func (d *DBProvider) close() error {
	type2Err := d.closeClient(d.clients[DataSourceType2])
	type4Err := d.closeClient(d.clients[DataSourceType4])
	return errors.Join(type2Err, type4Err)
}

// closeClient is a helper to close a DB client with locking.
func (d *DBProvider) closeClient(mc *managedClient) error {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	if mc.client != nil {
		if err := mc.client.Close(); err != nil {
			return fmt.Errorf("failed to close %s client: %w", mc.name, err)
		}
		mc.client = nil
	}
	return nil
}
