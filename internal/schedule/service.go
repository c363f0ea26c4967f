package schedule

// ServiceSet is a set of service identifiers.
type ServiceSet map[string]struct{}

// Contains reports whether id is in the set.
func (s ServiceSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// ActiveServices returns the services operating on date.
//
// The base set comes from the calendar rules. Exceptions dated on date are then
// applied: every Added exception first, then every Removed exception, so a
// service with both an Added and a Removed exception for the same date ends up
// excluded regardless of input order.
func ActiveServices(rules []CalendarRule, exceptions []ServiceException, date string, weekday Weekday) ServiceSet {
	active := make(ServiceSet)
	for _, rule := range rules {
		if rule.RunsOn(date, weekday) {
			active[rule.ServiceID] = struct{}{}
		}
	}

	for _, kind := range [...]ExceptionKind{ExceptionAdded, ExceptionRemoved} {
		for _, ex := range exceptions {
			if ex.Date != date || ex.Kind != kind {
				continue
			}
			if kind == ExceptionAdded {
				active[ex.ServiceID] = struct{}{}
			} else {
				delete(active, ex.ServiceID)
			}
		}
	}

	return active
}
