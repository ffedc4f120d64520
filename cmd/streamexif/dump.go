package main

import (
	"fmt"
	"os"

	"github.com/jrm-1535/streamexif"
	"github.com/jrm-1535/streamexif/internal/logger"
	"github.com/jrm-1535/streamexif/internal/mmapfile"
	"github.com/spf13/cobra"
)

func newDumpCommand() *cobra.Command {
	var stopOnError bool
	var logLevel string

	cmd := &cobra.Command{
		Use:          "dump <file.jpg>",
		Short:        "Stream the Exif tags found in a JPEG file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := defaultLogLevel()
			if logLevel != "" {
				level = logger.ParseLevel(logLevel)
			}
			stop := defaultStopOnError()
			if cmd.Flags().Changed("stop-on-error") {
				stop = stopOnError
			}
			return runDump(args[0], level, stop)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR (default: $STREAMEXIF_LOG_LEVEL, else INFO)")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "stop at the first decode error instead of continuing the stream")

	return cmd
}

func runDump(path string, level logger.Level, stopOnError bool) error {
	log := logger.New(os.Stdout, level)

	mapped, err := mmapfile.Open(path)
	if err != nil {
		return err
	}
	defer mapped.Close()

	reader, err := exif.NewReader(mapped.Data)
	if err != nil {
		return fmt.Errorf("streamexif: %w", err)
	}

	for {
		tag, err, more := reader.Next()
		if !more {
			return nil
		}
		if err != nil {
			log.Errorf("%v", err)
			if stopOnError {
				return err
			}
			continue
		}
		log.Infof("%s", formatTag(tag))
	}
}

func formatTag(tag exif.Tag) string {
	switch tag.Kind {
	case exif.KindImageDescription:
		return "ImageDescription: " + tag.Text
	case exif.KindMake:
		return "Make: " + tag.Text
	case exif.KindModel:
		return "Model: " + tag.Text
	case exif.KindModifyDate:
		return fmt.Sprintf("ModifyDate: %04d:%02d:%02d %02d:%02d:%02d",
			tag.DateTime.Year, tag.DateTime.Month, tag.DateTime.Day,
			tag.DateTime.Hour, tag.DateTime.Minute, tag.DateTime.Second)
	case exif.KindDateTimeOriginal:
		return fmt.Sprintf("DateTimeOriginal: %04d:%02d:%02d %02d:%02d:%02d",
			tag.DateTime.Year, tag.DateTime.Month, tag.DateTime.Day,
			tag.DateTime.Hour, tag.DateTime.Minute, tag.DateTime.Second)
	case exif.KindCreateDate:
		return fmt.Sprintf("CreateDate: %04d:%02d:%02d %02d:%02d:%02d",
			tag.DateTime.Year, tag.DateTime.Month, tag.DateTime.Day,
			tag.DateTime.Hour, tag.DateTime.Minute, tag.DateTime.Second)
	case exif.KindGpsPosition:
		return fmt.Sprintf("GpsPosition: lat=%f lon=%f", tag.GPS.Lat, tag.GPS.Lon)
	case exif.KindThumbnail:
		return fmt.Sprintf("Thumbnail: mime=%s offset=%d length=%d", tag.Thumbnail.Mime, tag.Thumbnail.Offset, tag.Thumbnail.Length)
	default:
		return fmt.Sprintf("Other: tag=0x%04X section=%s format=%s count=%d", tag.Raw.Tag.TagNumber, tag.Raw.Section, tag.Raw.Tag.Format, tag.Raw.Tag.Count)
	}
}
