package mocks

//go:generate mockery --name ObservationSource --srcpkg github.com/storepulse/store-monitor/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name JobStore --srcpkg github.com/storepulse/store-monitor/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Submitter --srcpkg github.com/storepulse/store-monitor/internal/report --output ./report --outpkg reportmocks --with-expecter
