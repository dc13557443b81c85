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

package log

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// clfTimeLayout is the timestamp layout of the Apache common log format.
const clfTimeLayout = "02/Jan/2006:15:04:05 -0700"

// AccessLogHandler logs each HTTP request as an Apache CLF line followed by the response time.
func AccessLogHandler(logger *Logger, next http.Handler) http.Handler {
	accessLogger := logger.With(String(LoggerKeyComponentName, "AccessLog"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		accessLogger.Info(formatAccessLogLine(r, start, rw.status, rw.bytes),
			Int64("durationMs", time.Since(start).Milliseconds()))
	})
}

// formatAccessLogLine renders the CLF portion of an access log entry.
func formatAccessLogLine(r *http.Request, start time.Time, status, size int) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		host = r.RemoteAddr
	}

	return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d`,
		host, start.Format(clfTimeLayout), r.Method, r.RequestURI, r.Proto, status, size)
}

// statusRecorder wraps http.ResponseWriter to capture the status code and the body size.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

// WriteHeader records the status code before delegating.
func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Write records the number of bytes written before delegating.
func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}
