package db

var schema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS products (
	product_id UUID PRIMARY KEY,
	product_number VARCHAR(16) NOT NULL UNIQUE,
	type VARCHAR(32) NOT NULL,
	selling_status VARCHAR(32) NOT NULL,
	name VARCHAR(255) NOT NULL,
	price INT NOT NULL CHECK (price >= 0)
);

CREATE TABLE IF NOT EXISTS stocks (
	product_number VARCHAR(16) PRIMARY KEY,
	quantity INT NOT NULL CHECK (quantity >= 0)
);

CREATE TABLE IF NOT EXISTS orders (
	order_id UUID PRIMARY KEY,
	status VARCHAR(32) NOT NULL,
	total_price INT NOT NULL,
	registered_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS order_products (
	id SERIAL PRIMARY KEY,
	order_id UUID NOT NULL REFERENCES orders (order_id),
	product_number VARCHAR(16) NOT NULL,
	name VARCHAR(255) NOT NULL,
	price INT NOT NULL
);

CREATE TABLE IF NOT EXISTS mail_send_history (
	id SERIAL PRIMARY KEY,
	from_email VARCHAR(255) NOT NULL,
	to_email VARCHAR(255) NOT NULL,
	subject VARCHAR(255) NOT NULL,
	content TEXT NOT NULL,
	sent_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	event_id UUID PRIMARY KEY,
	published_at TIMESTAMPTZ NOT NULL,
	event_name VARCHAR(255) NOT NULL,
	event_payload JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS read_model_ops_orders (
	order_id UUID PRIMARY KEY,
	payload JSONB NOT NULL
);
`
