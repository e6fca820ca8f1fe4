// Package services contains stateless domain services: the notification
// composer that renders recipient-specific messages from recorded domain
// events, and the branch locator that decides address serviceability.
package services
