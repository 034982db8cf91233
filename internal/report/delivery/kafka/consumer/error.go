package consumer

import "errors"

var (
	errMissingDependency = errors.New("auto-report consumer: missing dependency")
	errNoBrokers         = errors.New("auto-report consumer: no kafka brokers configured")
	errJoinGroup         = errors.New("auto-report consumer: join consumer group")
)
