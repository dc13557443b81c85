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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/asgardeo/emprest/internal/system/constants"
	"github.com/asgardeo/emprest/internal/system/error/apierror"
	"github.com/asgardeo/emprest/internal/system/error/serviceerror"
	"github.com/asgardeo/emprest/internal/system/log"
)

// WriteJSON writes the value as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.GetLogger().Error("Error encoding response", log.Error(err))
	}
}

// WriteText writes a plain text response with the given status code.
func WriteText(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeTextPlain)
	w.WriteHeader(statusCode)

	if _, err := w.Write([]byte(text)); err != nil {
		log.GetLogger().Error("Error writing response", log.Error(err))
	}
}

// WriteServiceError writes the service error as a JSON error response. Client errors map to
// 400 and everything else to 500.
func WriteServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	}

	WriteJSON(w, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}
