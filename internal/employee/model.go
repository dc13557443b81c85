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
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the yyyy-MM-dd layout used for employee dates.
const dateLayout = "2006-01-02"

const (
	// DataSourceType2 selects the local (in-process) datasource.
	DataSourceType2 = "type2"
	// DataSourceType4 selects the network datasource.
	DataSourceType4 = "type4"
)

// Date is a calendar date serialized as "yyyy-MM-dd". The zero value serializes as null.
type Date struct {
	time.Time
}

// NewDate returns the calendar date of t.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// String returns the date in yyyy-MM-dd form, or an empty string for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var value *string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	if value == nil || *value == "" {
		*d = Date{}
		return nil
	}

	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", *value, err)
	}
	*d = Date{t}
	return nil
}

// Employee represents a row of the EMP table.
type Employee struct {
	EmpNo     string `json:"empNo"`
	FirstName string `json:"firstName"`
	MidInit   string `json:"midInit"`
	LastName  string `json:"lastName"`
	WorkDept  string `json:"workDept"`
	PhoneNo   string `json:"phoneNo"`
	HireDate  Date   `json:"hireDate"`
	Job       string `json:"job"`
	EdLevel   int    `json:"edLevel"`
	Sex       string `json:"sex"`
	BirthDate string `json:"birthDate"`
	Salary    int64  `json:"salary"`
	Bonus     int64  `json:"bonus"`
	Comm      int64  `json:"comm"`
}

// Outcome is the result of a mutating employee operation.
type Outcome struct {
	Success bool
	EmpNo   string
	Message string
}
