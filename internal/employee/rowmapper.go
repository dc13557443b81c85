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
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EMP column names as keyed by the DB client.
const (
	columnEmpNo     = "empno"
	columnFirstName = "firstnme"
	columnMidInit   = "midinit"
	columnLastName  = "lastname"
	columnWorkDept  = "workdept"
	columnPhoneNo   = "phoneno"
	columnHireDate  = "hiredate"
	columnJob       = "job"
	columnEdLevel   = "edlevel"
	columnSex       = "sex"
	columnBirthDate = "birthdate"
	columnSalary    = "salary"
	columnBonus     = "bonus"
	columnComm      = "comm"
)

// mapEmployee builds an Employee from a result row. Every EMP column must be present in the
// row. SQL NULL values map to the zero value of the field.
func mapEmployee(row map[string]interface{}) (Employee, error) {
	m := rowMapper{row: row}
	emp := Employee{
		EmpNo:     m.stringValue(columnEmpNo),
		FirstName: m.stringValue(columnFirstName),
		MidInit:   m.stringValue(columnMidInit),
		LastName:  m.stringValue(columnLastName),
		WorkDept:  m.stringValue(columnWorkDept),
		PhoneNo:   m.stringValue(columnPhoneNo),
		HireDate:  m.dateValue(columnHireDate),
		Job:       m.stringValue(columnJob),
		EdLevel:   int(m.intValue(columnEdLevel)),
		Sex:       m.stringValue(columnSex),
		BirthDate: m.stringValue(columnBirthDate),
		Salary:    m.intValue(columnSalary),
		Bonus:     m.intValue(columnBonus),
		Comm:      m.intValue(columnComm),
	}
	if m.err != nil {
		return Employee{}, m.err
	}
	return emp, nil
}

// rowMapper reads typed column values from a row and keeps the first failure.
type rowMapper struct {
	row map[string]interface{}
	err error
}

func (m *rowMapper) value(column string) (interface{}, bool) {
	if m.err != nil {
		return nil, false
	}
	v, ok := m.row[column]
	if !ok {
		m.err = fmt.Errorf("%w: column %s is missing", ErrMappingError, column)
		return nil, false
	}
	return v, v != nil
}

func (m *rowMapper) fail(column string, v interface{}) {
	m.err = fmt.Errorf("%w: column %s has unsupported value of type %T", ErrMappingError, column, v)
}

func (m *rowMapper) stringValue(column string) string {
	v, ok := m.value(column)
	if !ok {
		return ""
	}

	switch t := v.(type) {
	case string:
		return strings.TrimRight(t, " ")
	case []byte:
		return strings.TrimRight(string(t), " ")
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(dateLayout)
	}
	m.fail(column, v)
	return ""
}

func (m *rowMapper) intValue(column string) int64 {
	v, ok := m.value(column)
	if !ok {
		return 0
	}

	switch t := v.(type) {
	case int64:
		return t
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, ok := parseInt(t); ok {
			return n
		}
	case []byte:
		if n, ok := parseInt(string(t)); ok {
			return n
		}
	}
	m.fail(column, v)
	return 0
}

func (m *rowMapper) dateValue(column string) Date {
	v, ok := m.value(column)
	if !ok {
		return Date{}
	}

	switch t := v.(type) {
	case time.Time:
		return NewDate(t)
	case string:
		if d, ok := parseDate(t); ok {
			return d
		}
	case []byte:
		if d, ok := parseDate(string(t)); ok {
			return d
		}
	}
	m.fail(column, v)
	return Date{}
}

// parseInt parses an integer or a decimal number, truncating the fraction.
func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// parseDate parses the leading yyyy-MM-dd part of a date or timestamp string.
func parseDate(s string) (Date, bool) {
	if len(s) < len(dateLayout) {
		return Date{}, false
	}
	t, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return Date{}, false
	}
	return Date{t}, true
}
