package accountpb

import "fmt"

// Each type below mirrors a message in account.proto. The protobuf struct
// tags carry the field numbers and encoding; getters are nil-safe, matching
// the convention generated code established.

type RegisterRequest struct {
	Name             string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Surname          string `protobuf:"bytes,2,opt,name=surname,proto3" json:"surname,omitempty"`
	DisplayName      string `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Email            string `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	TelephoneNumber  string `protobuf:"bytes,5,opt,name=telephone_number,json=telephoneNumber,proto3" json:"telephone_number,omitempty"`
	LineId           string `protobuf:"bytes,6,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	Password         string `protobuf:"bytes,7,opt,name=password,proto3" json:"password,omitempty"`
	ProfileImage     []byte `protobuf:"bytes,8,opt,name=profile_image,json=profileImage,proto3" json:"profile_image,omitempty"`
	ProfileImageName string `protobuf:"bytes,9,opt,name=profile_image_name,json=profileImageName,proto3" json:"profile_image_name,omitempty"`
}

func (m *RegisterRequest) Reset()         { *m = RegisterRequest{} }
func (m *RegisterRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterRequest) ProtoMessage()    {}

func (m *RegisterRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *RegisterRequest) GetSurname() string {
	if m != nil {
		return m.Surname
	}
	return ""
}

func (m *RegisterRequest) GetDisplayName() string {
	if m != nil {
		return m.DisplayName
	}
	return ""
}

func (m *RegisterRequest) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

func (m *RegisterRequest) GetTelephoneNumber() string {
	if m != nil {
		return m.TelephoneNumber
	}
	return ""
}

func (m *RegisterRequest) GetLineId() string {
	if m != nil {
		return m.LineId
	}
	return ""
}

func (m *RegisterRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

func (m *RegisterRequest) GetProfileImage() []byte {
	if m != nil {
		return m.ProfileImage
	}
	return nil
}

func (m *RegisterRequest) GetProfileImageName() string {
	if m != nil {
		return m.ProfileImageName
	}
	return ""
}

type RegisterResponse struct {
	UserId  string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *RegisterResponse) Reset()         { *m = RegisterResponse{} }
func (m *RegisterResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterResponse) ProtoMessage()    {}

func (m *RegisterResponse) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *RegisterResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type LoginRequest struct {
	Email    string `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *LoginRequest) Reset()         { *m = LoginRequest{} }
func (m *LoginRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*LoginRequest) ProtoMessage()    {}

func (m *LoginRequest) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

func (m *LoginRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type LoginResponse struct {
	Token     string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	UserId    string `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ExpiresAt int64  `protobuf:"varint,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
}

func (m *LoginResponse) Reset()         { *m = LoginResponse{} }
func (m *LoginResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*LoginResponse) ProtoMessage()    {}

func (m *LoginResponse) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

func (m *LoginResponse) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *LoginResponse) GetExpiresAt() int64 {
	if m != nil {
		return m.ExpiresAt
	}
	return 0
}

type GetProfileRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *GetProfileRequest) Reset()         { *m = GetProfileRequest{} }
func (m *GetProfileRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetProfileRequest) ProtoMessage()    {}

func (m *GetProfileRequest) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

type Profile struct {
	UserId          string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name            string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Surname         string `protobuf:"bytes,3,opt,name=surname,proto3" json:"surname,omitempty"`
	DisplayName     string `protobuf:"bytes,4,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Email           string `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	TelephoneNumber string `protobuf:"bytes,6,opt,name=telephone_number,json=telephoneNumber,proto3" json:"telephone_number,omitempty"`
	LineId          string `protobuf:"bytes,7,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	ProfileImage    string `protobuf:"bytes,8,opt,name=profile_image,json=profileImage,proto3" json:"profile_image,omitempty"`
}

func (m *Profile) Reset()         { *m = Profile{} }
func (m *Profile) String() string { return fmt.Sprintf("%+v", *m) }
func (*Profile) ProtoMessage()    {}

func (m *Profile) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *Profile) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Profile) GetSurname() string {
	if m != nil {
		return m.Surname
	}
	return ""
}

func (m *Profile) GetDisplayName() string {
	if m != nil {
		return m.DisplayName
	}
	return ""
}

func (m *Profile) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

func (m *Profile) GetTelephoneNumber() string {
	if m != nil {
		return m.TelephoneNumber
	}
	return ""
}

func (m *Profile) GetLineId() string {
	if m != nil {
		return m.LineId
	}
	return ""
}

func (m *Profile) GetProfileImage() string {
	if m != nil {
		return m.ProfileImage
	}
	return ""
}

type ProfileResponse struct {
	Message string   `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Profile *Profile `protobuf:"bytes,2,opt,name=profile,proto3" json:"profile,omitempty"`
}

func (m *ProfileResponse) Reset()         { *m = ProfileResponse{} }
func (m *ProfileResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ProfileResponse) ProtoMessage()    {}

func (m *ProfileResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *ProfileResponse) GetProfile() *Profile {
	if m != nil {
		return m.Profile
	}
	return nil
}

type UpdateProfileRequest struct {
	UserId           string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name             string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Surname          string `protobuf:"bytes,3,opt,name=surname,proto3" json:"surname,omitempty"`
	DisplayName      string `protobuf:"bytes,4,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	TelephoneNumber  string `protobuf:"bytes,5,opt,name=telephone_number,json=telephoneNumber,proto3" json:"telephone_number,omitempty"`
	LineId           string `protobuf:"bytes,6,opt,name=line_id,json=lineId,proto3" json:"line_id,omitempty"`
	ProfileImage     []byte `protobuf:"bytes,7,opt,name=profile_image,json=profileImage,proto3" json:"profile_image,omitempty"`
	ProfileImageName string `protobuf:"bytes,8,opt,name=profile_image_name,json=profileImageName,proto3" json:"profile_image_name,omitempty"`
}

func (m *UpdateProfileRequest) Reset()         { *m = UpdateProfileRequest{} }
func (m *UpdateProfileRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateProfileRequest) ProtoMessage()    {}

func (m *UpdateProfileRequest) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *UpdateProfileRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *UpdateProfileRequest) GetSurname() string {
	if m != nil {
		return m.Surname
	}
	return ""
}

func (m *UpdateProfileRequest) GetDisplayName() string {
	if m != nil {
		return m.DisplayName
	}
	return ""
}

func (m *UpdateProfileRequest) GetTelephoneNumber() string {
	if m != nil {
		return m.TelephoneNumber
	}
	return ""
}

func (m *UpdateProfileRequest) GetLineId() string {
	if m != nil {
		return m.LineId
	}
	return ""
}

func (m *UpdateProfileRequest) GetProfileImage() []byte {
	if m != nil {
		return m.ProfileImage
	}
	return nil
}

func (m *UpdateProfileRequest) GetProfileImageName() string {
	if m != nil {
		return m.ProfileImageName
	}
	return ""
}

type ChangePasswordRequest struct {
	UserId          string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	CurrentPassword string `protobuf:"bytes,2,opt,name=current_password,json=currentPassword,proto3" json:"current_password,omitempty"`
	NewPassword     string `protobuf:"bytes,3,opt,name=new_password,json=newPassword,proto3" json:"new_password,omitempty"`
}

func (m *ChangePasswordRequest) Reset()         { *m = ChangePasswordRequest{} }
func (m *ChangePasswordRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ChangePasswordRequest) ProtoMessage()    {}

func (m *ChangePasswordRequest) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *ChangePasswordRequest) GetCurrentPassword() string {
	if m != nil {
		return m.CurrentPassword
	}
	return ""
}

func (m *ChangePasswordRequest) GetNewPassword() string {
	if m != nil {
		return m.NewPassword
	}
	return ""
}

type DeleteProfileRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *DeleteProfileRequest) Reset()         { *m = DeleteProfileRequest{} }
func (m *DeleteProfileRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteProfileRequest) ProtoMessage()    {}

func (m *DeleteProfileRequest) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

type LogoutRequest struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *LogoutRequest) Reset()         { *m = LogoutRequest{} }
func (m *LogoutRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*LogoutRequest) ProtoMessage()    {}

func (m *LogoutRequest) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

type StatusResponse struct {
	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *StatusResponse) Reset()         { *m = StatusResponse{} }
func (m *StatusResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusResponse) ProtoMessage()    {}

func (m *StatusResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}
