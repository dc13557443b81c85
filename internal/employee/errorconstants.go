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

package employee

import (
	"errors"

	"github.com/asgardeo/emprest/internal/system/error/serviceerror"
)

// Client errors for employee operations.
var (
	// ErrorInvalidSalary is the error returned when the new salary is not a 32 bit integer.
	ErrorInvalidSalary = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EMP-1001",
		Error:            "Invalid salary",
		ErrorDescription: "The new salary must be a 32 bit integer",
	}
)

// Server errors for employee operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "EMP-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorEmployeeMappingFailed is the error returned when a row cannot be converted to an employee.
	ErrorEmployeeMappingFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "EMP-5001",
		Error:            "Employee mapping failed",
		ErrorDescription: "A stored employee record could not be read",
	}
	// ErrorTransactionFailed is the error returned when a transaction cannot be started or committed.
	ErrorTransactionFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "EMP-5002",
		Error:            "Transaction failed",
		ErrorDescription: "The transaction could not be completed",
	}
)

// ErrMappingError is returned when a result row cannot be decoded into an employee.
var ErrMappingError = errors.New("employee mapping error")
