// Package staff contains the technician and courier entities. Both are
// assignment targets for orders: technicians perform inspections, repairs and
// installations, couriers move items between customers and the service center.
package staff
