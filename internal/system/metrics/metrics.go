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

// Package metrics exposes the prometheus collectors of the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation results recorded by EmployeeOperations.
const (
	ResultSuccess = "success"
	ResultNoRows  = "no_rows"
	ResultError   = "error"
)

// EmployeeOperations counts employee operations by operation, datasource and result.
var EmployeeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "emprest_employee_operations_total",
	Help: "Number of employee operations served per datasource",
}, []string{"operation", "datasource", "result"})

// RecordEmployeeOperation increments the employee operation counter.
func RecordEmployeeOperation(operation, dataSource, result string) {
	EmployeeOperations.WithLabelValues(operation, dataSource, result).Inc()
}

// Initialize registers the metrics endpoint.
func Initialize(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
