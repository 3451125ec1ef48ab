// Package http implements the REST API of the key blob server.
//
// The server stores only what a client cannot be hurt by losing: salts,
// login proofs and master keys wrapped under the password or the recovery
// phrase. Handlers decode JSON, call the service layer and map its errors
// to statuses through errorResponses. Tracing, access logging, compression
// and bearer authentication are middleware.
package http
