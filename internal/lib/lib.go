// Package lib holds integrations that do not belong to a single layer:
// background job processing (Redis/Asynq) in lib/job and the Resend email
// client in lib/email.
package lib
