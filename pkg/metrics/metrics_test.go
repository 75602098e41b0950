package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			registryOpt := WithRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with a custom registry", func() {
			manager := NewManager(WithRegistry(prometheus.NewRegistry()))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithRegistry(prometheus.NewRegistry()),
			)
			So(manager, ShouldNotBeNil)
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording roster mutations", func() {
			So(func() {
				RecordMutation("athlete", "add")
				RecordMutation("athlete", "delete")
				RecordMutation("team", "update")
			}, ShouldNotPanic)
		})

		Convey("When updating entity counts", func() {
			So(func() {
				UpdateEntityCount("athletes", 10)
				UpdateEntityCount("teams", 2)
				UpdateEntityCount("athletes", 0)
			}, ShouldNotPanic)
		})

		Convey("When recording cascade removals and attendance upserts", func() {
			So(func() {
				RecordCascadeRemovals(3)
				RecordAttendanceUpsert()
				RecordAttendanceUpsert()
			}, ShouldNotPanic)
		})

		Convey("When recording storage failures", func() {
			So(func() {
				RecordStorageLoadFailure("athletes")
				RecordStorageSaveFailure("attendance")
			}, ShouldNotPanic)
		})

		Convey("When recording export rows", func() {
			So(func() {
				RecordExportRows("athletes", 5)
				RecordExportRows("attendance", 0)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("athletes", "GET", "200")
				RecordHTTPRequestDuration("athletes", "GET", "200", 1.5)
			}, ShouldNotPanic)
		})
	})
}

func TestRegistryGathering(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		RecordMutation("event", "add")

		Convey("When gathering", func() {
			families, err := GetRegistry().Gather()

			Convey("Then the roster metrics should be registered", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["appello_roster_mutations_total"], ShouldBeTrue)
			})
		})
	})
}
