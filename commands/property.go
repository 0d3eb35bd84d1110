package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-leasing/models"
	"github.com/beesaferoot/property-leasing/store"
)

func PropertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Manage leasable properties",
	}
	cmd.AddCommand(
		propertyAddCmd(),
		propertyListCmd(),
		propertyDeleteCmd(),
		propertyPictureCmd(),
	)
	return cmd
}

type propertyFlags struct {
	address, description, rent, period string
	floorArea                          float64
	kind, landUse, amenities           string
	bedrooms, bathrooms, capacity      int
	picture                            string
}

func (f propertyFlags) details(category models.Category) models.Details {
	switch category {
	case models.CategoryCommercial:
		return models.Commercial{Kind: f.kind}
	case models.CategoryResidential:
		return models.Residential{Kind: f.kind, Bedrooms: f.bedrooms, Bathrooms: f.bathrooms}
	case models.CategoryLand:
		return models.Land{LandUse: f.landUse}
	case models.CategoryResorts:
		return models.Resort{Kind: f.kind, Amenities: f.amenities}
	case models.CategoryVenues:
		return models.Venue{Kind: f.kind, Capacity: f.capacity}
	}
	return nil
}

func propertyAddCmd() *cobra.Command {
	var f propertyFlags
	cmd := &cobra.Command{
		Use:   "add [category]",
		Short: "Add a property",
		Long:  "Adds a property of one of the categories commercial, residential, land, resorts or venues. Only the flags of that category are stored.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := models.ParseCategory(args[0])
			if err != nil {
				return err
			}
			rent, err := parseAmount("rent_amount", f.rent)
			if err != nil {
				return err
			}
			p, err := models.NewProperty(models.PropertySpec{
				Address:     f.address,
				FloorArea:   f.floorArea,
				RentAmount:  rent,
				RentPeriod:  models.Frequency(f.period),
				Description: f.description,
			}, f.details(category))
			if err != nil {
				return err
			}

			return withApp(cmd, func(a *app) error {
				id, err := a.ctrl.AddProperty(cmd.Context(), p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Property added with ID: %d\n", id)

				if f.picture == "" {
					return nil
				}
				path, err := a.ctrl.AttachPicture(cmd.Context(), id, f.picture)
				if err != nil {
					return fmt.Errorf("property %d was saved but its picture was not: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Picture stored at %s\n", path)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.address, "address", "", "Street address")
	flags.Float64Var(&f.floorArea, "floor-area", 0, "Floor area in square meters")
	flags.StringVar(&f.rent, "rent", "0", "Rent amount")
	flags.StringVar(&f.period, "period", string(models.Monthly), "Rent period (monthly or yearly)")
	flags.StringVar(&f.description, "description", "", "Free text description")
	flags.StringVar(&f.kind, "kind", "", "Kind of property, e.g. Office or Apartment (all but land)")
	flags.IntVar(&f.bedrooms, "bedrooms", 0, "Number of bedrooms (residential)")
	flags.IntVar(&f.bathrooms, "bathrooms", 0, "Number of bathrooms (residential)")
	flags.StringVar(&f.landUse, "land-use", "", "Land use (land)")
	flags.StringVar(&f.amenities, "amenities", "", "Amenities (resorts)")
	flags.IntVar(&f.capacity, "capacity", 0, "Guest capacity (venues)")
	flags.StringVar(&f.picture, "picture", "", "Picture file to attach")
	return cmd
}

func propertyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			available, _ := cmd.Flags().GetBool("available")
			byCategory, _ := cmd.Flags().GetBool("by-category")

			filter := store.PropertyFilter{AvailableOnly: available}
			if category != "" {
				c, err := models.ParseCategory(category)
				if err != nil {
					return err
				}
				filter.Category = c
			}
			if byCategory {
				filter.OrderBy = store.OrderByCategory
			}

			return withApp(cmd, func(a *app) error {
				props, err := a.ctrl.Properties(cmd.Context(), filter)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(props) == 0 {
					fmt.Fprintln(out, "No properties found.")
					return nil
				}
				for _, p := range props {
					fmt.Fprintln(out, p.Summary())
				}
				return nil
			})
		},
	}

	cmd.Flags().String("category", "", "Only list one category")
	cmd.Flags().Bool("available", false, "Only list available properties")
	cmd.Flags().Bool("by-category", false, "Order by category and kind instead of ID")
	return cmd
}

func propertyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a property that is not rented",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("property", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app) error {
				res, err := a.ctrl.DeleteProperty(cmd.Context(), id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if res.PictureErr != nil {
					fmt.Fprintf(out, "Warning: picture of property %d was not removed: %v\n", id, res.PictureErr)
				}
				fmt.Fprintf(out, "Property %d deleted\n", id)
				return nil
			})
		},
	}
}

func propertyPictureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "picture [id] [file]",
		Short: "Show or attach the picture of a property",
		Long:  "With a file argument the picture is stored, replacing any earlier one. Without it the stored picture location is printed.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("property", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app) error {
				out := cmd.OutOrStdout()
				if len(args) == 2 {
					path, err := a.ctrl.AttachPicture(cmd.Context(), id, strings.TrimSpace(args[1]))
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Picture stored at %s\n", path)
					return nil
				}

				path, found, err := a.ctrl.PicturePath(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !found {
					fmt.Fprintf(out, "No picture found for property %d\n", id)
					return nil
				}
				fmt.Fprintln(out, path)
				return nil
			})
		},
	}
}
