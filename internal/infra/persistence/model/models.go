package model

// All lists every persisted model, parents ahead of the tables referencing
// them.
func All() []any {
	return []any{
		&StoreModel{},
		&StoreItemModel{},
		&TaskModel{},
		&ProximityProfileModel{},
		&UserDeviceModel{},
		&ProximityNotificationModel{},
		&NotificationLogModel{},
	}
}
