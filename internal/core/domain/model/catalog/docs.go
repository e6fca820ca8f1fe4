// Package catalog contains the reference entities orders point at: service
// categories, customer addresses and service center branches. Branch coverage
// determines whether an address is serviceable at all.
package catalog
