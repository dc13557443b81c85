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

package seeder

// EmployeeData represents an EMP row to be seeded.
type EmployeeData struct {
	EmpNo     string
	FirstName string
	MidInit   string
	LastName  string
	WorkDept  string
	PhoneNo   string
	HireDate  string
	Job       string
	EdLevel   int
	Sex       string
	BirthDate string
	Salary    int64
	Bonus     int64
	Comm      int64
}

// getSeedData returns a subset of the DB2 SAMPLE employee table.
func getSeedData() []EmployeeData {
	return []EmployeeData{
		{"000010", "CHRISTINE", "I", "HAAS", "A00", "3978", "1995-01-01", "PRES", 18, "F", "1963-08-24",
			152750, 1000, 4220},
		{"000020", "MICHAEL", "L", "THOMPSON", "B01", "3476", "2003-10-10", "MANAGER", 18, "M", "1978-02-02",
			94250, 800, 3300},
		{"000030", "SALLY", "A", "KWAN", "C01", "4738", "2005-04-05", "MANAGER", 20, "F", "1971-05-11",
			98250, 800, 3060},
		{"000050", "JOHN", "B", "GEYER", "E01", "6789", "1979-08-17", "MANAGER", 16, "M", "1955-09-15",
			80175, 800, 3214},
		{"000060", "IRVING", "F", "STERN", "D11", "6423", "2003-09-14", "MANAGER", 16, "M", "1975-07-07",
			72250, 500, 2580},
		{"000070", "EVA", "D", "PULASKI", "D21", "7831", "2005-09-30", "MANAGER", 16, "F", "2003-05-26",
			96170, 700, 2893},
		{"000090", "EILEEN", "W", "HENDERSON", "E11", "5498", "2000-08-15", "MANAGER", 16, "F", "1971-05-15",
			89750, 600, 2380},
		{"000100", "THEODORE", "Q", "SPENSER", "E21", "0972", "2000-06-19", "MANAGER", 14, "M", "1980-12-18",
			86150, 500, 2092},
	}
}
