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

import "github.com/asgardeo/emprest/internal/system/database/model"

var (
	// queryCreateEmployeeTable creates the EMP table with the DB2 SAMPLE layout.
	queryCreateEmployeeTable = model.DBQuery{
		ID: "SDQ-EMP-01",
		Query: "CREATE TABLE IF NOT EXISTS EMP (" +
			"EMPNO CHAR(6) NOT NULL PRIMARY KEY, FIRSTNME VARCHAR(12) NOT NULL, MIDINIT CHAR(1), " +
			"LASTNAME VARCHAR(15) NOT NULL, WORKDEPT CHAR(3), PHONENO CHAR(4), HIREDATE DATE, " +
			"JOB CHAR(8), EDLEVEL SMALLINT NOT NULL, SEX CHAR(1), BIRTHDATE DATE, " +
			"SALARY DECIMAL(9,2), BONUS DECIMAL(9,2), COMM DECIMAL(9,2))",
		SQLiteQuery: "CREATE TABLE IF NOT EXISTS EMP (" +
			"EMPNO TEXT NOT NULL PRIMARY KEY, FIRSTNME TEXT NOT NULL, MIDINIT TEXT, " +
			"LASTNAME TEXT NOT NULL, WORKDEPT TEXT, PHONENO TEXT, HIREDATE TEXT, " +
			"JOB TEXT, EDLEVEL INTEGER NOT NULL, SEX TEXT, BIRTHDATE TEXT, " +
			"SALARY INTEGER, BONUS INTEGER, COMM INTEGER)",
	}

	// queryInsertSeedEmployee inserts a sample employee unless the EMPNO already exists.
	queryInsertSeedEmployee = model.DBQuery{
		ID: "SDQ-EMP-02",
		Query: "INSERT INTO EMP (EMPNO, FIRSTNME, MIDINIT, LASTNAME, WORKDEPT, PHONENO, HIREDATE, JOB, " +
			"EDLEVEL, SEX, BIRTHDATE, SALARY, BONUS, COMM) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		PostgresQuery: "INSERT INTO EMP (EMPNO, FIRSTNME, MIDINIT, LASTNAME, WORKDEPT, PHONENO, HIREDATE, JOB, " +
			"EDLEVEL, SEX, BIRTHDATE, SALARY, BONUS, COMM) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) " +
			"ON CONFLICT (EMPNO) DO NOTHING",
		SQLiteQuery: "INSERT OR IGNORE INTO EMP (EMPNO, FIRSTNME, MIDINIT, LASTNAME, WORKDEPT, PHONENO, HIREDATE, " +
			"JOB, EDLEVEL, SEX, BIRTHDATE, SALARY, BONUS, COMM) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		MySQLQuery: "INSERT IGNORE INTO EMP (EMPNO, FIRSTNME, MIDINIT, LASTNAME, WORKDEPT, PHONENO, HIREDATE, " +
			"JOB, EDLEVEL, SEX, BIRTHDATE, SALARY, BONUS, COMM) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
	}
)
