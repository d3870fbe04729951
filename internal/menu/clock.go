package menu

import "time"

// nowFunc is swappable in tests to make documents comparable
var nowFunc = time.Now
