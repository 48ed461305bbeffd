/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

const (
	// Schema
	schemaDrop = `
	DROP TABLE IF EXISTS sales;
	DROP TABLE IF EXISTS vehicles;
	DROP TABLE IF EXISTS expenses;`

	schemaCreate = `
	CREATE TABLE IF NOT EXISTS vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		purchase_price DECIMAL NOT NULL,
		expected_sell_price DECIMAL NOT NULL,
		date_added TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sales (
		sale_id INTEGER PRIMARY KEY AUTOINCREMENT,
		vehicle_id INTEGER NOT NULL REFERENCES vehicles(id),
		customer_name TEXT NOT NULL,
		sale_price DECIMAL NOT NULL,
		date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS expenses (
		expense_id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		amount DECIMAL NOT NULL,
		date TEXT NOT NULL
	);`

	// Vehicle queries
	queryInsertVehicle = `
		INSERT INTO vehicles (brand, model, year, purchase_price, expected_sell_price, date_added)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, brand, model, year, purchase_price, expected_sell_price, date_added`

	queryGetVehicle = `
		SELECT id, brand, model, year, purchase_price, expected_sell_price, date_added
		FROM vehicles
		WHERE id = ?`

	queryListVehicles = `
		SELECT id, brand, model, year, purchase_price, expected_sell_price, date_added
		FROM vehicles
		ORDER BY id`

	queryListInventory = `
		SELECT v.id, v.brand, v.model, v.year, v.purchase_price, v.expected_sell_price, v.date_added
		FROM vehicles v
		WHERE NOT EXISTS (SELECT 1 FROM sales s WHERE s.vehicle_id = v.id)
		ORDER BY v.id DESC`

	// Sale queries
	queryInsertSale = `
		INSERT INTO sales (vehicle_id, customer_name, sale_price, date)
		VALUES (?, ?, ?, ?)
		RETURNING sale_id, vehicle_id, customer_name, sale_price, date`

	queryListSales = `
		SELECT sale_id, vehicle_id, customer_name, sale_price, date
		FROM sales
		ORDER BY date DESC, sale_id DESC`

	// Expense queries
	queryInsertExpense = `
		INSERT INTO expenses (description, amount, date)
		VALUES (?, ?, ?)
		RETURNING expense_id, description, amount, date`

	queryListExpenses = `
		SELECT expense_id, description, amount, date
		FROM expenses
		ORDER BY date DESC, expense_id DESC`

	// Seed queries
	querySeedVehicle = `
		INSERT INTO vehicles (brand, model, year, purchase_price, expected_sell_price, date_added)
		VALUES (?, ?, ?, ?, ?, ?)`

	querySeedExpense = `
		INSERT INTO expenses (description, amount, date)
		VALUES (?, ?, ?)`

	queryCountRecords = `
		SELECT
			(SELECT COUNT(*) FROM vehicles),
			(SELECT COUNT(*) FROM sales),
			(SELECT COUNT(*) FROM expenses)`
)
